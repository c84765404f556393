package resolve

import "errors"

// Report collects the diagnostics of one resolution, in the order found.
type Report struct {
	errs []*NodeError
}

// Errors returns the reported errors. A nil Report has none.
func (r *Report) Errors() []*NodeError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.errs)
}

// Last returns the most recently reported error, or nil.
func (r *Report) Last() error {
	if r.Len() == 0 {
		return nil
	}
	return r.errs[len(r.errs)-1]
}

// Err joins all reported errors, or returns nil if there are none.
func (r *Report) Err() error {
	if r.Len() == 0 {
		return nil
	}
	errs := make([]error, len(r.errs))
	for i, e := range r.errs {
		errs[i] = e
	}
	return errors.Join(errs...)
}

func (r *Report) add(e *NodeError) {
	r.errs = append(r.errs, e)
}
