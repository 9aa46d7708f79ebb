package srv

import (
	"github.com/postpilot-ai/postpilot/pkg/ai"
)

type Srv struct {
	ai ai.Driver
}

type ApplyFunc func(*Srv)

func SetupSrvs(opts ...ApplyFunc) *Srv {
	a := &Srv{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (s *Srv) AI() ai.Driver {
	return s.ai
}

// SetAI 仅用于测试注入
func (s *Srv) SetAI(driver ai.Driver) {
	s.ai = driver
}
