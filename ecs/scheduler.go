package ecs

// System runs once per tick against the world.
type System interface {
	Update(w *World)
}

type scheduled struct {
	system System
	when   func() bool
}

// Scheduler runs systems in the order they were added. A system added with
// AddWhen is skipped on ticks where its guard is false.
type Scheduler struct {
	entries []scheduled
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	s.AddWhen(system, nil)
}

func (s *Scheduler) AddWhen(system System, when func() bool) {
	if system == nil {
		return
	}
	s.entries = append(s.entries, scheduled{system: system, when: when})
}

// Update runs one tick and returns how many systems ran.
func (s *Scheduler) Update(w *World) int {
	ran := 0
	for _, e := range s.entries {
		if e.when != nil && !e.when() {
			continue
		}
		e.system.Update(w)
		ran++
	}
	return ran
}

func (s *Scheduler) Len() int {
	return len(s.entries)
}
