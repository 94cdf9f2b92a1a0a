package monitor

// Metric 单线程计数器，并发场景需自行加锁
type Metric struct {
	name  string
	value uint64
}

func (m *Metric) Name() string {
	return m.name
}

func (m *Metric) Add(val uint64) (newValue uint64) {
	m.value += val
	return m.value
}

func (m *Metric) Incr() (newValue uint64) {
	return m.Add(1)
}

func (m *Metric) Set(val uint64) {
	m.value = val
}

func (m *Metric) Get() (val uint64) {
	return m.value
}
