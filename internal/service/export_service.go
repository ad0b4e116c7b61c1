package service

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"seo-keyword-finder/internal/domain"

	"github.com/google/uuid"
)

var (
	bulletLineRe   = regexp.MustCompile(`^\s*-\s+`)
	exportedNameRe = regexp.MustCompile(`^seo-draft-[0-9a-f]{32}\.docx$`)
)

// ExporterService implements domain.ExportService. Exports land in the
// configured directory under a random unique filename; files live only as
// long as the directory does.
type ExporterService struct {
	exportPath string
	logger     domain.Logger
}

// NewExportService creates a new DOCX exporter
func NewExportService(exportPath string, logger domain.Logger) *ExporterService {
	return &ExporterService{exportPath: exportPath, logger: logger}
}

type blockKind int

const (
	blockHeading1 blockKind = iota
	blockHeading2
	blockBullet
	blockParagraph
)

type docxBlock struct {
	kind blockKind
	text string
}

// Export converts markdown-like copy into a DOCX file and returns its
// filename.
func (s *ExporterService) Export(markdown string) (string, error) {
	name := "seo-draft-" + strings.ReplaceAll(uuid.New().String(), "-", "") + ".docx"
	path := filepath.Join(s.exportPath, name)

	if err := writeDocx(path, mapMarkdownLines(markdown)); err != nil {
		return "", err
	}

	s.logger.Info("DOCX exported", "filename", name)
	return name, nil
}

// Resolve maps an exported filename back to its path on disk. Only names
// the exporter itself generates are accepted, which both blocks path
// traversal and keeps the download surface to 128-bit random tokens.
func (s *ExporterService) Resolve(name string) (string, error) {
	if !exportedNameRe.MatchString(name) {
		return "", domain.ErrInvalidFilename
	}

	path := filepath.Join(s.exportPath, name)
	if _, err := os.Stat(path); err != nil {
		return "", domain.ErrFileNotFound
	}
	return path, nil
}

// mapMarkdownLines applies the line-prefix mapping: "## " becomes a top
// heading, "### " a sub-heading, "- " a bullet with the marker stripped,
// and every other line a plain paragraph. Blank lines are preserved as
// empty paragraphs.
func mapMarkdownLines(markdown string) []docxBlock {
	var blocks []docxBlock
	for _, line := range strings.Split(markdown, "\n") {
		switch {
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, docxBlock{kind: blockHeading1, text: line[3:]})
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, docxBlock{kind: blockHeading2, text: line[4:]})
		case bulletLineRe.MatchString(line):
			blocks = append(blocks, docxBlock{kind: blockBullet, text: bulletLineRe.ReplaceAllString(line, "")})
		default:
			blocks = append(blocks, docxBlock{kind: blockParagraph, text: line})
		}
	}
	return blocks
}
