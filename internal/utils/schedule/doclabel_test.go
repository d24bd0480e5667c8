package schedule_test

import (
	"regexp"
	"testing"

	"github.com/gestorsaas/gestor_financeiro_app/internal/utils/schedule"
	"github.com/stretchr/testify/assert"
)

func TestNewDocumentLabel(t *testing.T) {
	re := regexp.MustCompile(`^\d{5}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, schedule.NewDocumentLabel())
	}
}

func TestNewInstallmentGroup(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, schedule.NewInstallmentGroup())
	}
}

func TestInstallmentLabel(t *testing.T) {
	assert.Equal(t, "4821-1/3", schedule.InstallmentLabel("4821", 1, 3))
	assert.Equal(t, "4821-3/3", schedule.InstallmentLabel("4821", 3, 3))
}
