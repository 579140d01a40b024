// Package watson decodes watson frame exports for bulk import.
//
// Each frame is a JSON array with positional fields:
//
//	[start_epoch, stop_epoch, project, id, [tags...], updated_epoch]
package watson

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/punchcli/punch/internal/domain/ledger"
)

// ErrMalformed indicates frame data that does not parse into the expected
// tuple shape. It is fatal for the whole import run.
var ErrMalformed = errors.New("malformed watson frame")

// Frame is one decoded watson frame.
type Frame struct {
	Start     time.Time
	Stop      time.Time
	Project   string
	ID        string
	Tags      []string
	UpdatedAt time.Time
}

// UnmarshalJSON decodes the positional tuple representation.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: not an array: %v", ErrMalformed, err)
	}
	if len(raw) != 6 {
		return fmt.Errorf("%w: expected 6 elements, got %d", ErrMalformed, len(raw))
	}

	var start, stop, updated int64
	if err := json.Unmarshal(raw[0], &start); err != nil {
		return fmt.Errorf("%w: start epoch: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(raw[1], &stop); err != nil {
		return fmt.Errorf("%w: stop epoch: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(raw[2], &f.Project); err != nil {
		return fmt.Errorf("%w: project: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(raw[3], &f.ID); err != nil {
		return fmt.Errorf("%w: id: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(raw[4], &f.Tags); err != nil {
		return fmt.Errorf("%w: tags: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(raw[5], &updated); err != nil {
		return fmt.Errorf("%w: updated epoch: %v", ErrMalformed, err)
	}

	f.Start = time.Unix(start, 0).UTC()
	f.Stop = time.Unix(stop, 0).UTC()
	f.UpdatedAt = time.Unix(updated, 0).UTC()
	return nil
}

// LedgerFrame converts the frame into the ledger's import shape.
func (f Frame) LedgerFrame() ledger.Frame {
	return ledger.Frame{
		Project:    f.Project,
		Tags:       f.Tags,
		StartedOn:  f.Start,
		StoppedOn:  f.Stop,
		ExternalID: f.ID,
	}
}

// Decode parses a JSON array of frames.
func Decode(data []byte) ([]ledger.Frame, error) {
	var raw []Frame
	if err := json.Unmarshal(data, &raw); err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	frames := make([]ledger.Frame, 0, len(raw))
	for _, f := range raw {
		frames = append(frames, f.LedgerFrame())
	}
	return frames, nil
}

// DecodeFile reads and parses a frame export file.
func DecodeFile(path string) ([]ledger.Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frames file: %w", err)
	}
	return Decode(data)
}
