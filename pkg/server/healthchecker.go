package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// CompositeHealthChecker is healthy when every member is.
type CompositeHealthChecker struct {
	checkers []HealthChecker
}

func NewCompositeHealthChecker(checkers ...HealthChecker) *CompositeHealthChecker {
	return &CompositeHealthChecker{checkers: checkers}
}

// Add registers c when it is non-nil.
func (hc *CompositeHealthChecker) Add(c HealthChecker) {
	if c != nil {
		hc.checkers = append(hc.checkers, c)
	}
}

func (hc *CompositeHealthChecker) Healthy(ctx context.Context) bool {
	for _, c := range hc.checkers {
		if !c.Healthy(ctx) {
			return false
		}
	}
	return true
}

// AsHealthChecker returns v as a HealthChecker if it implements one.
func AsHealthChecker(v any) HealthChecker {
	if hc, ok := v.(HealthChecker); ok {
		return hc
	}
	return nil
}
