package structs

const (
	Incr = 1
	Decr = -1
)

const (
	DefaultSeparator = " "
	DefaultBufferCap = 64
)
