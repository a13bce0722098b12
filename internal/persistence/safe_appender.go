package persistence

import (
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

// Appender funnels rows from any goroutine into one duckdb appender,
// which is not safe for concurrent use.
type Appender struct {
	a    *duckdb.Appender
	reqs chan appendRequest
	done chan struct{}
}

type appendRequest struct {
	row   []driver.Value // nil requests a flush
	reply chan error
}

func NewAppender(duckAppender *duckdb.Appender) *Appender {
	a := Appender{
		a:    duckAppender,
		reqs: make(chan appendRequest),
		done: make(chan struct{}),
	}
	go func() {
		defer close(a.done)
		for req := range a.reqs {
			if req.row == nil {
				req.reply <- a.a.Flush()
				continue
			}
			req.reply <- a.a.AppendRow(req.row...)
		}
	}()
	return &a
}

func (a *Appender) do(row []driver.Value) error {
	reply := make(chan error, 1)
	a.reqs <- appendRequest{row: row, reply: reply}
	return <-reply
}

func (a *Appender) AppendRow(args ...driver.Value) error {
	if len(args) == 0 {
		return fmt.Errorf("empty row")
	}
	return a.do(args)
}

func (a *Appender) Flush() error {
	return a.do(nil)
}

// Close flushes pending rows and releases the appender.
// The appender must not be used afterwards.
func (a *Appender) Close() error {
	close(a.reqs)
	<-a.done
	return a.a.Close() // closing flushes buffered rows
}
