package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/sharedref/rc"
	"github.com/wippyai/sharedref/trace"
)

// Scenario describes a sequence of ownership exercises: each object is
// created, shared, observed and released, and the trace registry
// records what happened.
type Scenario struct {
	Name    string   `yaml:"name"`
	Objects []Object `yaml:"objects"`
}

// Object configures one managed value and the handles pointed at it.
type Object struct {
	Name   string `yaml:"name"`
	Value  int    `yaml:"value"`
	Clones int    `yaml:"clones"`
	Weaks  int    `yaml:"weaks"`
	Alias  bool   `yaml:"alias"`
	Leak   bool   `yaml:"leak"`
}

// LoadScenario reads a YAML scenario file. An empty path yields the
// built-in default scenario.
func LoadScenario(path string) (*Scenario, error) {
	if path == "" {
		return DefaultScenario(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Objects) == 0 {
		return nil, fmt.Errorf("scenario %q has no objects", sc.Name)
	}
	return &sc, nil
}

// DefaultScenario exercises sharing, weak observation and aliasing on
// two objects.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name: "default",
		Objects: []Object{
			{Name: "cache-entry", Value: 42, Clones: 2, Weaks: 1, Alias: true},
			{Name: "session", Value: 7, Clones: 1, Weaks: 2},
		},
	}
}

// payload is the value type the demo manages. Embedding trace.Instance
// makes disposal visible to the counter.
type payload struct {
	trace.Instance
	Name  string
	Value int
}

type step struct {
	desc string
	run  func() error
}

// player flattens a scenario into single steps so the interactive mode
// can advance one operation at a time.
type player struct {
	counter *trace.Counter
	steps   []step
	next    int
}

func newPlayer(sc *Scenario, counter *trace.Counter) *player {
	p := &player{counter: counter}
	for i := range sc.Objects {
		p.addObject(sc.Objects[i])
	}
	p.steps = append(p.steps, step{
		desc: "verify no instances outstanding",
		run:  counter.Verify,
	})
	return p
}

func (p *player) addObject(obj Object) {
	var (
		owner  rc.Shared[payload]
		clones []rc.Shared[payload]
		weaks  []rc.Weak[payload]
		field  rc.Shared[int]
	)

	p.add(fmt.Sprintf("make %q", obj.Name), func() error {
		var err error
		owner, err = rc.Make(payload{
			Instance: p.counter.NewInstance(),
			Name:     obj.Name,
			Value:    obj.Value,
		})
		return err
	})

	for i := 0; i < obj.Clones; i++ {
		n := i + 1
		p.add(fmt.Sprintf("clone %q (#%d)", obj.Name, n), func() error {
			clones = append(clones, owner.Clone())
			return nil
		})
	}

	for i := 0; i < obj.Weaks; i++ {
		n := i + 1
		p.add(fmt.Sprintf("observe %q (#%d)", obj.Name, n), func() error {
			weaks = append(weaks, owner.Downgrade())
			return nil
		})
	}

	if obj.Alias {
		p.add(fmt.Sprintf("alias %q.value", obj.Name), func() error {
			field = rc.Alias(owner, &owner.Get().Value)
			return nil
		})
	}

	for i := 0; i < obj.Clones; i++ {
		n := i + 1
		p.add(fmt.Sprintf("release clone of %q (#%d)", obj.Name, n), func() error {
			clones[len(clones)-1].Release()
			clones = clones[:len(clones)-1]
			return nil
		})
	}

	if obj.Weaks > 0 {
		p.add(fmt.Sprintf("promote observer of %q", obj.Name), func() error {
			locked := weaks[0].Lock()
			if !locked.Valid() {
				return fmt.Errorf("observer of %q expired early", obj.Name)
			}
			locked.Release()
			return nil
		})
	}

	if obj.Alias {
		p.add(fmt.Sprintf("release alias of %q", obj.Name), func() error {
			field.Release()
			return nil
		})
	}

	if obj.Leak {
		p.add(fmt.Sprintf("leak last owner of %q", obj.Name), func() error {
			return nil
		})
	} else {
		p.add(fmt.Sprintf("drop last owner of %q", obj.Name), func() error {
			owner.Release()
			return nil
		})
	}

	for i := 0; i < obj.Weaks; i++ {
		n := i + 1
		p.add(fmt.Sprintf("release observer of %q (#%d)", obj.Name, n), func() error {
			if obj.Leak {
				if weaks[len(weaks)-1].Expired() {
					return fmt.Errorf("observer of %q expired despite leak", obj.Name)
				}
			} else if !weaks[len(weaks)-1].Expired() {
				return fmt.Errorf("observer of %q should be expired", obj.Name)
			}
			weaks[len(weaks)-1].Release()
			weaks = weaks[:len(weaks)-1]
			return nil
		})
	}
}

func (p *player) add(desc string, run func() error) {
	p.steps = append(p.steps, step{desc: desc, run: run})
}

// Step runs the next step and reports its description. done is true
// once every step has run.
func (p *player) Step() (desc string, done bool, err error) {
	if p.next >= len(p.steps) {
		return "", true, nil
	}
	s := p.steps[p.next]
	p.next++
	return s.desc, p.next >= len(p.steps), s.run()
}

// Progress reports steps executed and total.
func (p *player) Progress() (int, int) {
	return p.next, len(p.steps)
}
