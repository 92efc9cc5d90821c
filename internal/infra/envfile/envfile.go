// Where: internal/infra/envfile/envfile.go
// What: Read-only inspection of dotenv files.
// Why: Validate staged env files without ever rewriting their content.
package envfile

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Reader reads dotenv files from the real filesystem.
type Reader struct{}

func (Reader) Read(path string) (map[string]string, error) { return Read(path) }

// Read parses the dotenv file at path into a key/value map.
func Read(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return values, nil
}
