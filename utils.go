package structs

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Join 以sep连接values，不追加换行
func Join[T any](values []T, sep string) string {
	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	writeValues(buf, values, sep)
	return buf.String()
}

// Render 将values以空格分隔写入w，并以换行结尾
func Render[T any](w io.Writer, values []T) (err error) {
	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	writeValues(buf, values, DefaultSeparator)
	buf.WriteByte('\n')

	_, err = w.Write(buf.Bytes())
	return err
}

func writeValues[T any](buf *bytes.Buffer, values []T, sep string) {
	for index := 0; index < len(values); index++ {
		if index > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(FormatValue(values[index]))
	}
}

func FormatValue(value interface{}) string {
	switch val := value.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	}

	return fmt.Sprint(value)
}
