package generator

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// AccountNumberGenerator генерирует 12-значные числовые номера счетов.
// Уникальность проверяет вызывающая сторона по хранилищу:
// генератор отвечает только за формат.
type AccountNumberGenerator struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewAccountNumberGenerator() *AccountNumberGenerator {
	return &AccountNumberGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate возвращает случайный 12-значный номер счета
func (g *AccountNumberGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	// Первая цифра ненулевая, чтобы номер всегда был 12-значным
	return fmt.Sprintf("%d%011d", 1+g.rand.Intn(9), g.rand.Int63n(100000000000))
}
