package checkin

import (
	"testing"

	"Backend-KidCheckin/src/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	ana := &models.Child{FirstName: "Ana", LastName: "Popescu"}

	t.Run("TestCodeFormat", func(t *testing.T) {
		assert.Equal(t, "AP01P1", GenerateCode(ana, models.ProgramP1, 1))
		assert.Equal(t, "AP03P2", GenerateCode(ana, models.ProgramP2, 3))
	})

	t.Run("TestOrdinalZeroPadding", func(t *testing.T) {
		assert.Equal(t, "AP09P1", GenerateCode(ana, models.ProgramP1, 9))
		assert.Equal(t, "AP10P1", GenerateCode(ana, models.ProgramP1, 10))
	})

	t.Run("TestDeterministic", func(t *testing.T) {
		first := GenerateCode(ana, models.ProgramP1, 7)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, GenerateCode(ana, models.ProgramP1, 7))
		}
	})

	t.Run("TestLowercaseNames", func(t *testing.T) {
		child := &models.Child{FirstName: "bogdan", LastName: "ionescu"}
		assert.Equal(t, "BI02P2", GenerateCode(child, models.ProgramP2, 2))
	})
}

func TestCombineCode(t *testing.T) {
	t.Run("TestSuffixSwap", func(t *testing.T) {
		// combined code reuses the P1 initials/ordinal, only the program
		// suffix changes
		assert.Equal(t, "AP01P1+P2", CombineCode("AP01P1"))
		assert.Equal(t, "MI12P1+P2", CombineCode("MI12P1"))
	})
}
