package schedule

import (
	"fmt"
	"math/rand"
)

// NewDocumentLabel returns a random five digit document label for a single
// scheduled entry. Uniqueness is best effort; collisions are tolerated.
func NewDocumentLabel() string {
	return fmt.Sprintf("%05d", rand.Intn(90000)+10000)
}

// NewInstallmentGroup returns a random four digit group key shared by every
// installment generated from one request.
func NewInstallmentGroup() string {
	return fmt.Sprintf("%04d", rand.Intn(9000)+1000)
}

// InstallmentLabel formats the document label of the i-th installment (one
// based) out of total, e.g. "4821-2/12".
func InstallmentLabel(group string, i, total int) string {
	return fmt.Sprintf("%s-%d/%d", group, i, total)
}
