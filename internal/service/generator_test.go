package service

import (
	"strings"
	"sync"
	"testing"

	"github.com/avc-dev/linkcounter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alwaysUnique(model.Code) bool {
	return true
}

// TestGenerateCode_Format проверяет формат сгенерированного кода
func TestGenerateCode_Format(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator(CodeLength, RetryPolicy{MaxAttempts: 10})

	// Act & Assert
	for i := 0; i < 50; i++ {
		code, err := generator.GenerateCode()
		require.NoError(t, err)

		assert.Len(t, code, CodeLength, "Code: %s", code)
		for _, char := range code {
			assert.True(t, strings.ContainsRune(AllowedChars, char),
				"Code %s contains invalid character: %c", code, char)
		}
	}
}

// TestNewCodeGenerator_Defaults проверяет нормализацию параметров
func TestNewCodeGenerator_Defaults(t *testing.T) {
	// Act
	generator := NewCodeGenerator(0, RetryPolicy{MaxAttempts: 0, MaxExtraLength: -5})

	// Assert
	assert.Equal(t, CodeLength, generator.length)
	assert.Equal(t, 1, generator.policy.MaxAttempts)
	assert.Equal(t, 0, generator.policy.MaxExtraLength)
}

// TestAllowedChars проверяет алфавит из 62 символов
func TestAllowedChars(t *testing.T) {
	seen := make(map[rune]bool)
	for _, char := range AllowedChars {
		assert.True(t, (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9'))
		seen[char] = true
	}

	assert.Len(t, seen, 62)
}

// TestGenerateUniqueCode_SuccessAfterRetries проверяет успех после нескольких попыток
func TestGenerateUniqueCode_SuccessAfterRetries(t *testing.T) {
	tests := []struct {
		name             string
		failUntilAttempt int
	}{
		{
			name:             "Success on first attempt",
			failUntilAttempt: 1,
		},
		{
			name:             "Success on fifth attempt",
			failUntilAttempt: 5,
		},
		{
			name:             "Success on last attempt",
			failUntilAttempt: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			generator := NewCodeGenerator(CodeLength, RetryPolicy{MaxAttempts: 10})
			attemptCount := 0
			isUnique := func(code model.Code) bool {
				attemptCount++
				return attemptCount >= tt.failUntilAttempt
			}

			// Act
			code, err := generator.GenerateUniqueCode(isUnique)

			// Assert
			require.NoError(t, err)
			assert.Len(t, code, CodeLength)
			assert.Equal(t, tt.failUntilAttempt, attemptCount)
		})
	}
}

// TestGenerateUniqueCode_FallbackToLongerCode проверяет удлинение кода после исчерпания попыток
func TestGenerateUniqueCode_FallbackToLongerCode(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator(CodeLength, RetryPolicy{MaxAttempts: 3, MaxExtraLength: 2})
	var lengths []int
	isUnique := func(code model.Code) bool {
		lengths = append(lengths, len(code))
		// Свободны только коды длиннее базового
		return len(code) > CodeLength
	}

	// Act
	code, err := generator.GenerateUniqueCode(isUnique)

	// Assert
	require.NoError(t, err)
	assert.Len(t, code, CodeLength+1)
	assert.Equal(t, []int{CodeLength, CodeLength, CodeLength, CodeLength + 1}, lengths)
}

// TestGenerateUniqueCode_MaxRetriesExceeded проверяет исчерпание попыток
func TestGenerateUniqueCode_MaxRetriesExceeded(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator(CodeLength, RetryPolicy{MaxAttempts: 4, MaxExtraLength: 1})
	attemptCount := 0
	isUnique := func(code model.Code) bool {
		attemptCount++
		return false
	}

	// Act
	code, err := generator.GenerateUniqueCode(isUnique)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.Empty(t, code)
	assert.Equal(t, 8, attemptCount)
}

// TestGenerateUniqueCode_CheckerReceivesDifferentCodes проверяет, что при повторах проверяются разные коды
func TestGenerateUniqueCode_CheckerReceivesDifferentCodes(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator(CodeLength, RetryPolicy{MaxAttempts: 20})
	receivedCodes := make(map[model.Code]bool)
	attemptCount := 0
	isUnique := func(code model.Code) bool {
		attemptCount++
		receivedCodes[code] = true
		return attemptCount > 10
	}

	// Act
	code, err := generator.GenerateUniqueCode(isUnique)

	// Assert
	require.NoError(t, err)
	assert.True(t, receivedCodes[code])
	assert.Greater(t, len(receivedCodes), 1, "Expected checker to receive multiple different codes")
}

// TestGenerateCode_CodeCharacterDistribution проверяет распределение символов
func TestGenerateCode_CodeCharacterDistribution(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator(CodeLength, RetryPolicy{MaxAttempts: 1})
	charCount := make(map[rune]int)

	// Act - генерируем много кодов и считаем символы
	for i := 0; i < 1000; i++ {
		code, err := generator.GenerateUniqueCode(alwaysUnique)
		require.NoError(t, err)

		for _, char := range code {
			charCount[char]++
		}
	}

	// Assert - при 6000 символах должны встретиться все 62 (вероятность обратного пренебрежимо мала)
	assert.Len(t, charCount, len(AllowedChars))
}

// TestGenerateCode_Concurrent проверяет конкурентное использование одного генератора
func TestGenerateCode_Concurrent(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator(CodeLength, RetryPolicy{MaxAttempts: 1})
	numGoroutines := 100
	codes := make(chan model.Code, numGoroutines)
	wg := sync.WaitGroup{}
	wg.Add(numGoroutines)

	// Act
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			code, err := generator.GenerateCode()
			assert.NoError(t, err)
			codes <- code
		}()
	}

	wg.Wait()
	close(codes)

	// Assert
	unique := make(map[model.Code]bool)
	for code := range codes {
		unique[code] = true
	}

	assert.Len(t, unique, numGoroutines)
}
