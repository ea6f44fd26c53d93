package checkin

import (
	"Backend-KidCheckin/src/models"
	"fmt"
	"strings"
)

// GenerateCode builds the printable tag code from the child's initials, the
// 1-based per-(date,program) ordinal zero-padded to two digits, and the
// program id, e.g. initials "AP" + ordinal 3 + P1 -> "AP03P1". Deterministic
// for identical inputs; callers pre-validate.
func GenerateCode(child *models.Child, program models.Program, ordinal int) string {
	return fmt.Sprintf("%s%02d%s", child.Initials(), ordinal, program)
}

// CombineCode derives the combined two-session code by swapping the program
// suffix of the first session's code for the combined marker. Initials and
// ordinal stay those of the P1 code; the underlying P2 ordinal may differ and
// is not shown.
func CombineCode(p1Code string) string {
	return strings.TrimSuffix(p1Code, string(models.ProgramP1)) + string(models.ProgramBoth)
}
