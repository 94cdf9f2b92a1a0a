package monitor

import (
	"sort"

	"github.com/grpc-boot/structs"
)

type Monitor struct {
	appName    string
	metricList map[string]*Metric
}

func NewMonitor(appName string, nameList ...string) (m *Monitor) {
	m = &Monitor{
		appName:    appName,
		metricList: make(map[string]*Metric, len(nameList)),
	}

	for _, name := range nameList {
		m.metricList[name] = &Metric{name: name}
	}

	return
}

func (m *Monitor) AppName() string {
	return m.appName
}

func (m *Monitor) Incr(name string) (newValue uint64, exists bool) {
	return m.Add(name, structs.Incr)
}

func (m *Monitor) Add(name string, val uint64) (newValue uint64, exists bool) {
	_, exists = m.metricList[name]
	if exists {
		return m.metricList[name].Add(val), exists
	}

	return 0, exists
}

func (m *Monitor) Set(name string, val uint64) {
	if _, exists := m.metricList[name]; exists {
		m.metricList[name].Set(val)
	}
}

func (m *Monitor) GetMetric(name string) (metric *Metric, exists bool) {
	metric, exists = m.metricList[name]
	return
}

func (m *Monitor) Get(name string) (val uint64, exists bool) {
	if _, exists = m.metricList[name]; !exists {
		return
	}
	val = m.metricList[name].Get()
	return
}

// Names 按名称排序
func (m *Monitor) Names() []string {
	names := make([]string, 0, len(m.metricList))
	for name := range m.metricList {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Range handler返回true时停止
func (m *Monitor) Range(handler func(name string, value uint64) (handled bool)) {
	for _, name := range m.Names() {
		if handler(name, m.metricList[name].Get()) {
			break
		}
	}
}
