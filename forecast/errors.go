package forecast

import "errors"

// ErrInsufficientData means fewer than two distinct weeks of usable history
// were available; no forecast can be fit and callers should not render one.
var ErrInsufficientData = errors.New("insufficient data: need at least two distinct weeks of history")

// ErrInvalidConfig means the pipeline configuration was rejected before any
// computation started.
var ErrInvalidConfig = errors.New("invalid forecast configuration")
