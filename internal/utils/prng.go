// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Rand — минимальный источник случайности, который нужен генератору пещер,
// монстрам и ритм-секции. Тесты подставляют свои детерминированные реализации.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает сид, с которым был создан сервис.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает равномерное число в [lo, hi).
func Range(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance возвращает true с вероятностью p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}
