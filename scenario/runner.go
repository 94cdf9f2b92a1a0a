package scenario

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/grpc-boot/structs"
	"github.com/grpc-boot/structs/bst"
	"github.com/grpc-boot/structs/container"
	"github.com/grpc-boot/structs/monitor"
)

const (
	MetricInsert = "insert"
	MetricSearch = "search"
	MetricPop    = "pop"
	MetricRemove = "remove"
	MetricError  = "error"
)

// sequence List与DoubleList的公共操作
type sequence interface {
	PushBack(value int)
	PopFront() (int, error)
	Insert(pos int, value int) error
	Remove(pos int) (int, error)
	Reverse()
	Len() int
	String() string
}

type runner struct {
	conf *Conf
	w    io.Writer
	m    *monitor.Monitor
}

// Run 按conf驱动对应的数据结构，诊断输出写入w，返回操作计数
func Run(conf *Conf, w io.Writer) (m *monitor.Monitor, err error) {
	r := &runner{
		conf: conf,
		w:    w,
		m:    monitor.NewMonitor(conf.Structure, MetricInsert, MetricSearch, MetricPop, MetricRemove, MetricError),
	}

	switch strings.ToLower(conf.Structure) {
	case StructureBst:
		err = r.bst()
	case StructureList:
		err = r.sequence(container.NewList[int]())
	case StructureDoubleList:
		err = r.sequence(container.NewDoubleList[int]())
	case StructureStack:
		r.stack()
	case StructureQueue:
		r.queue()
	default:
		return nil, ErrStructure
	}

	if err != nil {
		return nil, err
	}
	return r.m, nil
}

func (r *runner) bst() (err error) {
	tree := bst.New[int]()
	for _, value := range r.conf.Values {
		tree.Insert(value)
		r.m.Incr(MetricInsert)
	}

	orders := []bst.Order{bst.Pre, bst.In, bst.Post}
	if r.conf.Order != "" {
		order, er := bst.ParseOrder(r.conf.Order)
		if er != nil {
			return er
		}
		orders = []bst.Order{order}
	}

	for _, order := range orders {
		fmt.Fprintf(r.w, "%s: ", order)
		if err = tree.Print(r.w, order); err != nil {
			return err
		}
	}

	fmt.Fprintf(r.w, "height: %d\n", tree.Height())
	fmt.Fprintf(r.w, "count: %d\n", tree.CountNodes())
	fmt.Fprintf(r.w, "balanced: %t\n", tree.IsBalanced())

	for _, value := range r.conf.Search {
		fmt.Fprintf(r.w, "search %d: %t\n", value, tree.Search(value))
		r.m.Incr(MetricSearch)
	}
	return nil
}

func (r *runner) sequence(seq sequence) (err error) {
	for _, value := range r.conf.Values {
		seq.PushBack(value)
		r.m.Incr(MetricInsert)
	}
	r.line("values", seq.String())

	for _, p := range r.conf.Insert {
		if er := seq.Insert(p.Pos, p.Value); er != nil {
			r.fail(fmt.Sprintf("insert %d", p.Pos), er)
			continue
		}
		r.m.Incr(MetricInsert)
		r.line(fmt.Sprintf("insert %d %d", p.Pos, p.Value), seq.String())
	}

	for _, pos := range r.conf.Remove {
		value, er := seq.Remove(pos)
		if er != nil {
			r.fail(fmt.Sprintf("remove %d", pos), er)
			continue
		}
		r.m.Incr(MetricRemove)
		r.line(fmt.Sprintf("remove %d", pos), structs.FormatValue(value))
	}

	if r.conf.Reverse {
		seq.Reverse()
		r.line("reverse", seq.String())
	}

	for index := 0; index < r.conf.Pop; index++ {
		value, er := seq.PopFront()
		if er != nil {
			r.fail("pop", er)
			break
		}
		r.m.Incr(MetricPop)
		r.line("pop", structs.FormatValue(value))
	}

	r.line("values", seq.String())
	fmt.Fprintf(r.w, "size: %d\n", seq.Len())
	return nil
}

func (r *runner) stack() {
	stack := container.NewStack[int]()
	for _, value := range r.conf.Values {
		stack.Push(value)
		r.m.Incr(MetricInsert)
	}
	r.line("values", stack.String())

	if top, err := stack.Top(); err == nil {
		r.line("top", structs.FormatValue(top))
	}

	for index := 0; index < r.conf.Pop; index++ {
		value, err := stack.Pop()
		if err != nil {
			r.fail("pop", err)
			break
		}
		r.m.Incr(MetricPop)
		r.line("pop", structs.FormatValue(value))
	}

	fmt.Fprintf(r.w, "size: %d\n", stack.Size())
}

func (r *runner) queue() {
	queue := container.NewQueue[int]()
	for _, value := range r.conf.Values {
		queue.Push(value)
		r.m.Incr(MetricInsert)
	}
	r.line("values", queue.String())

	if front, err := queue.Front(); err == nil {
		r.line("front", structs.FormatValue(front))
	}

	for index := 0; index < r.conf.Pop; index++ {
		value, err := queue.Pop()
		if err != nil {
			r.fail("pop", err)
			break
		}
		r.m.Incr(MetricPop)
		r.line("pop", structs.FormatValue(value))
	}

	fmt.Fprintf(r.w, "size: %d\n", queue.Size())
}

func (r *runner) line(label string, text string) {
	fmt.Fprintf(r.w, "%s: %s\n", label, text)
}

func (r *runner) fail(step string, err error) {
	log.Println("error:", step, err.Error())
	r.m.Incr(MetricError)
	r.line(step, "error: "+err.Error())
}
