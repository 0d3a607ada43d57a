// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ollama

import "io"

// Aggregator consumes decoded events in arrival order and writes token text
// straight to a sink, with no buffering or reordering. The terminal event
// appends one trailing line terminator and stops consumption.
type Aggregator struct {
	sink  io.Writer
	done  bool
	wrote bool
}

// NewAggregator creates an aggregator writing to sink
func NewAggregator(sink io.Writer) *Aggregator {
	return &Aggregator{sink: sink}
}

// Consume emits one event's token text. Events after the terminal event are
// ignored.
func (a *Aggregator) Consume(event GenerateEvent) error {
	if a.done {
		return nil
	}

	if event.Response != "" {
		if _, err := io.WriteString(a.sink, event.Response); err != nil {
			return err
		}
		a.wrote = true
	}

	if event.Done {
		a.done = true
		if _, err := io.WriteString(a.sink, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Done reports whether the terminal event has been consumed
func (a *Aggregator) Done() bool {
	return a.done
}

// Close terminates the output line when the stream ended without a terminal
// event, keeping the sink clean for whatever follows
func (a *Aggregator) Close() error {
	if a.done || !a.wrote {
		return nil
	}
	a.done = true
	_, err := io.WriteString(a.sink, "\n")
	return err
}
