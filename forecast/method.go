package forecast

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	ErrUnknownMethod = errors.New("unknown smoothing method")
	ErrUnknownTrend  = errors.New("unknown trend type")
	ErrNoMethodName  = errors.New("smoothing method has no name")
)

// Trend describes how the trend component combines with the level
type Trend int

const (
	TrendNone Trend = iota
	TrendAdditive
	TrendMultiplicative
)

var trendNames = map[Trend]string{
	TrendNone:           "none",
	TrendAdditive:       "additive",
	TrendMultiplicative: "multiplicative",
}

func (t Trend) String() string {
	if name, exists := trendNames[t]; exists {
		return name
	}
	return fmt.Sprintf("Trend(%d)", int(t))
}

func (t Trend) MarshalText() ([]byte, error) {
	name, exists := trendNames[t]
	if !exists {
		return nil, fmt.Errorf("%d, %w", int(t), ErrUnknownTrend)
	}
	return []byte(name), nil
}

func (t *Trend) UnmarshalText(text []byte) error {
	for trend, name := range trendNames {
		if name == string(text) {
			*t = trend
			return nil
		}
	}
	return fmt.Errorf("%q, %w", string(text), ErrUnknownTrend)
}

// Method identifies one exponential smoothing variant. All variants share the same recurrence
// and only differ by how the trend is combined with the level and whether it is damped.
type Method struct {
	Name   string `json:"name"`
	Trend  Trend  `json:"trend"`
	Damped bool   `json:"damped"`
}

var (
	SimpleExponentialSmoothing = Method{Name: "ses", Trend: TrendNone}
	HoltLinearTrend            = Method{Name: "holt", Trend: TrendAdditive}
	ExponentialTrend           = Method{Name: "exponential", Trend: TrendMultiplicative}
	DampedTrend                = Method{Name: "damped", Trend: TrendAdditive, Damped: true}
	MultiplicativeDampedTrend  = Method{Name: "multiplicative-damped", Trend: TrendMultiplicative, Damped: true}
)

// HasTrend returns true if the method carries a trend estimate next to the level
func (m Method) HasTrend() bool {
	return m.Trend != TrendNone
}

func (m Method) String() string {
	if !m.HasTrend() {
		return m.Name + " (no trend)"
	}
	if m.Damped {
		return fmt.Sprintf("%s (%s damped trend)", m.Name, m.Trend)
	}
	return fmt.Sprintf("%s (%s trend)", m.Name, m.Trend)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Method)
)

func init() {
	for _, m := range []Method{
		SimpleExponentialSmoothing,
		HoltLinearTrend,
		ExponentialTrend,
		DampedTrend,
		MultiplicativeDampedTrend,
	} {
		if err := Register(m); err != nil {
			panic(err)
		}
	}
}

// Register adds a method to the registry under its lower cased name, replacing any
// method already registered with that name
func Register(m Method) error {
	name := strings.ToLower(strings.TrimSpace(m.Name))
	if name == "" {
		return ErrNoMethodName
	}
	if _, exists := trendNames[m.Trend]; !exists {
		return fmt.Errorf("method %s, %w", name, ErrUnknownTrend)
	}
	m.Name = name

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = m
	return nil
}

// Lookup returns the registered method with the given name
func Lookup(name string) (Method, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	m, exists := registry[strings.ToLower(strings.TrimSpace(name))]
	if !exists {
		return Method{}, fmt.Errorf("%q, %w", name, ErrUnknownMethod)
	}
	return m, nil
}

// Methods lists all registered methods sorted by name
func Methods() []Method {
	registryMu.RLock()
	defer registryMu.RUnlock()

	methods := make([]Method, 0, len(registry))
	for _, m := range registry {
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool {
		return methods[i].Name < methods[j].Name
	})
	return methods
}
