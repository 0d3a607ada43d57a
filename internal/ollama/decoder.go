// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ollama

import (
	"bytes"
	"encoding/json"
)

// GenerateEvent is one decoded NDJSON object from a streaming generate
// response. Response carries the token text; Done marks the terminal event.
type GenerateEvent struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// EventDecoder reassembles newline-delimited JSON events from an arbitrarily
// chunked byte stream. The unterminated tail of the last chunk stays pending
// until a later chunk completes its line; the decoded event sequence is
// therefore independent of where chunk boundaries fall.
//
// A decoder serves exactly one response stream and must not be shared.
type EventDecoder struct {
	pending []byte
	done    bool
}

// Feed appends a chunk and returns every event completed by it. Malformed
// lines are dropped; partial JSON fragments are an expected artifact of
// chunk boundaries, not an error. After the terminal event the decoder
// ignores all further input.
func (d *EventDecoder) Feed(chunk []byte) []GenerateEvent {
	if d.done {
		return nil
	}

	d.pending = append(d.pending, chunk...)

	var events []GenerateEvent
	for {
		i := bytes.IndexByte(d.pending, '\n')
		if i < 0 {
			break
		}
		line := d.pending[:i]
		d.pending = d.pending[i+1:]

		event, ok := decodeEventLine(line)
		if !ok {
			continue
		}
		events = append(events, event)

		if event.Done {
			d.done = true
			d.pending = nil
			break
		}
	}
	return events
}

// Finish drains the pending unterminated tail once the stream has ended.
// Servers normally terminate every event line, so this usually yields
// nothing.
func (d *EventDecoder) Finish() []GenerateEvent {
	if d.done {
		return nil
	}

	line := d.pending
	d.pending = nil

	event, ok := decodeEventLine(line)
	if !ok {
		return nil
	}
	if event.Done {
		d.done = true
	}
	return []GenerateEvent{event}
}

// Done reports whether the terminal event has been decoded
func (d *EventDecoder) Done() bool {
	return d.done
}

func decodeEventLine(line []byte) (GenerateEvent, bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return GenerateEvent{}, false
	}

	var event GenerateEvent
	if err := json.Unmarshal(line, &event); err != nil {
		return GenerateEvent{}, false
	}
	return event, true
}
