// Package lexicon parses TSV lexicon dumps into domain records.
// Pure function: reader in, domain structs out. No database dependencies.
//
// Expected line format (tab-separated, one definition per line):
//
//	strong_number<TAB>original<TAB>short_definition<TAB>simple_transliteration
//
// Lines starting with '#' and blank lines are skipped. The strong number
// may be bare ("G123") or already padded ("G0123"); both normalize to the
// padded key.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/stepbible/step-vocab/internal/domain"
)

// Result holds the parse outcome.
type Result struct {
	Definitions []domain.LexiconDefinition
	Skipped     int
}

// Parse reads a TSV lexicon dump from r. Malformed lines (wrong column
// count, unparseable strong number) are counted in Skipped rather than
// failing the whole dump.
func Parse(r io.Reader) (Result, error) {
	var res Result

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			res.Skipped++
			continue
		}

		key, err := domain.PadStrongNumber(strings.TrimSpace(fields[0]))
		if err != nil {
			res.Skipped++
			continue
		}

		res.Definitions = append(res.Definitions, domain.LexiconDefinition{
			StrongNumber:          key,
			Original:              strings.TrimSpace(fields[1]),
			ShortDefinition:       strings.TrimSpace(fields[2]),
			SimpleTransliteration: strings.TrimSpace(fields[3]),
		})
	}

	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("scan lexicon dump at line %d: %w", lineNo, err)
	}

	return res, nil
}
