// Package target provides DebugTarget implementations. The only one shipped
// here is a simulated Cortex-M core, enough to drive the register tree end
// to end without real debug hardware.
package target

import (
	"context"
	"fmt"

	"github.com/EvilEli/cortex-debug/pkg/registers"
	"github.com/EvilEli/cortex-debug/pkg/utils"
)

// simNames is the register name list of the simulated core, in target
// order. The blank entries model register numbers the probe exposes but the
// core does not implement; the registry skips them, leaving index gaps.
var simNames = []string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12",
	"sp", "lr", "pc",
	"", "",
	"xPSR", "msp", "psp",
	"CONTROL", "FAULTMASK", "BASEPRI", "PRIMASK",
}

// Sim is a deterministic simulated Cortex-M target. Each Step scrambles the
// general purpose registers and advances pc, so that consecutive refreshes
// show plausible movement.
type Sim struct {
	values map[int]uint32
	seed   uint32
}

var _ registers.DebugTarget = (*Sim)(nil)

// NewSim creates a simulated target seeded for reproducible value streams
func NewSim(seed uint32) *Sim {
	s := &Sim{
		values: make(map[int]uint32, len(simNames)),
		seed:   seed | 1,
	}

	for index, name := range simNames {
		if name == "" {
			continue
		}
		s.values[index] = 0
	}

	// plausible reset state
	s.values[13] = 0x2000_8000 // sp
	s.values[15] = 0x0800_0000 // pc
	s.values[18] = 0x0100_0000 // xPSR: Thumb bit set
	s.values[19] = 0x2000_8000 // msp

	return s
}

// Step advances the simulation by one halt: general purpose registers take
// new pseudo-random values, pc moves forward, and the xPSR flags follow r0.
func (s *Sim) Step() {
	for index := 0; index <= 12; index++ {
		s.values[index] = s.next()
	}

	s.values[15] += 4
	s.values[14] = s.values[15] | 1

	// recompute N and Z from r0, keep Thumb set
	psr := uint32(0x0100_0000)
	if s.values[0] == 0 {
		psr |= 1 << 30
	}
	if s.values[0]&(1<<31) != 0 {
		psr |= 1 << 31
	}
	s.values[18] = psr
}

// next is a xorshift step over the seed
func (s *Sim) next() uint32 {
	s.seed ^= s.seed << 13
	s.seed ^= s.seed >> 17
	s.seed ^= s.seed << 5
	return s.seed
}

// RegisterNames returns the simulated core's register name list
func (s *Sim) RegisterNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return simNames, nil
}

// RegisterValues returns the current register values in wire form
func (s *Sim) RegisterValues(ctx context.Context) ([]registers.RegisterValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := make([]registers.RegisterValue, 0, len(s.values))
	for index, name := range simNames {
		if name == "" {
			continue
		}
		values = append(values, registers.RegisterValue{
			Number: fmt.Sprint(index),
			Value:  utils.HexFormat(s.values[index], 8, true),
		})
	}

	return values, nil
}
