package generator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// DemoDataGenerator генерирует значения для демонстрационного наполнения
type DemoDataGenerator struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewDemoDataGenerator() *DemoDataGenerator {
	return &DemoDataGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Amount возвращает случайную сумму от 100.00 до 10000.00
func (g *DemoDataGenerator) Amount() decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()
	cents := 10000 + g.rand.Int63n(990001)
	return decimal.New(cents, -2)
}
