package client

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ProbeStep is the outcome of one call made by Probe.
type ProbeStep struct {
	Name   string
	Status int
	Detail string
}

// Probe runs the smoke sequence against a server: no key, a wrong key,
// a valid key, then up to throttleAttempts list calls stopping at the first
// 429. Results are written to w as they happen.
func (c *Client) Probe(ctx context.Context, w io.Writer, validKey, invalidKey string, throttleAttempts int) ([]ProbeStep, error) {
	var steps []ProbeStep

	record := func(name string, jobs int, err error) (ProbeStep, error) {
		st := ProbeStep{Name: name, Status: 200, Detail: fmt.Sprintf("%d jobs", jobs)}
		if err != nil {
			var se *StatusError
			if !errors.As(err, &se) {
				return st, err
			}
			st.Status, st.Detail = se.Code, se.Detail
		}
		steps = append(steps, st)
		fmt.Fprintf(w, "%s: status %d, %s\n", st.Name, st.Status, st.Detail)
		return st, nil
	}

	for _, tc := range []struct{ name, key string }{
		{"no api key", ""},
		{"invalid api key", invalidKey},
		{"valid api key", validKey},
	} {
		jobs, err := c.ListJobs(ctx, tc.key)
		if _, err := record(tc.name, len(jobs), err); err != nil {
			return steps, err
		}
	}

	for i := 1; i <= throttleAttempts; i++ {
		jobs, err := c.ListJobs(ctx, validKey)
		st, err := record(fmt.Sprintf("throttle request %d", i), len(jobs), err)
		if err != nil {
			return steps, err
		}
		if st.Status == 429 {
			break
		}
	}

	return steps, nil
}
