// Demonstration driver: builds a tracked object, mutates it directly and
// through its container attributes, and prints both history views.
package main

import (
	"fmt"
	"math/rand"

	"github.com/attrhist/attribute-tracking-go/tracking"
)

type Counter struct {
	*tracking.Tracked
}

func NewCounter() (*Counter, error) {
	tracked, err := tracking.New()
	if err != nil {
		return nil, err
	}

	c := &Counter{Tracked: tracked}
	c.Set("number", 0)
	c.Set("kv", map[string]any{"key": 0})
	c.Set("list", []any{1, 2, 3})

	return c, nil
}

func (c *Counter) Increment() {
	number, _ := c.Get("number")
	c.Set("number", number.(int)+1)
}

func (c *Counter) Decrement() {
	number, _ := c.Get("number")
	c.Set("number", number.(int)-1)
}

func (c *Counter) ModifyKV() {
	kv, _ := c.Get("kv")
	kv.(*tracking.Dict).Set("key", rand.Intn(100)+1)
}

func (c *Counter) ModifyList() error {
	list, _ := c.Get("list")

	if err := list.(*tracking.List).Set(0, rand.Intn(90)+10); err != nil {
		return err
	}

	list.(*tracking.List).Append(rand.Intn(90) + 10)

	return nil
}

func main() {
	counter, err := NewCounter()
	if err != nil {
		panic(err)
	}

	counter.Increment()
	counter.Decrement()
	counter.ModifyKV()
	counter.ModifyKV()

	if err = counter.ModifyList(); err != nil {
		panic(err)
	}

	flatView, err := counter.GetChangeHistory()
	if err != nil {
		panic(err)
	}

	flatJSON, err := tracking.EncodeChangeRecords(flatView.Records())
	if err != nil {
		panic(err)
	}

	fmt.Println("\nChanges history (flat):")
	fmt.Println(string(flatJSON))

	attrView, err := counter.GetChangeHistory(tracking.WithFormat(tracking.FormatAttr))
	if err != nil {
		panic(err)
	}

	fmt.Println("\nChanges history (attr):")

	for attr, records := range attrView.ByAttr() {
		attrJSON, encodeErr := tracking.EncodeChangeRecords(records)
		if encodeErr != nil {
			panic(encodeErr)
		}

		fmt.Printf("%s: %s\n", attr, string(attrJSON))
	}
}
