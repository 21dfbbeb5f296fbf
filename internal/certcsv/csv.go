// Package certcsv reads and writes the certificate bulk-import CSV format.
//
// The importer splits on plain commas. Quoted values are not supported, so a
// value containing a comma shifts the columns of its row.
package certcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/SeakMengs/CertVerify/internal/constant"
	"github.com/SeakMengs/CertVerify/internal/model"
	"github.com/SeakMengs/CertVerify/internal/util"
	"github.com/go-playground/validator/v10"
)

// Header is the column order of the template and of exports.
var Header = []string{
	"certificateNumber",
	"recipientName",
	"courseName",
	"completionDate",
	"issueDate",
	"grade",
	"instructorName",
	"status",
}

// RequiredColumns are matched case-insensitively against the header.
var RequiredColumns = []string{"certificatenumber", "recipientname", "coursename", "completiondate", "issuedate"}

const template = `certificateNumber,recipientName,courseName,completionDate,issueDate,grade,instructorName,status
GZ2024004,Jane Doe,Web Development Fundamentals,2024-01-15,2024-01-20,A,Prof. Smith,active
GZ2024005,Bob Johnson,Data Science Basics,2024-02-10,2024-02-15,B+,Dr. Wilson,active
`

const TemplateFileName = "certificate_template.csv"

// Template returns the downloadable import template.
func Template() string {
	return template
}

// ParseError is a structural or validation failure. Row is the 1-based line
// number in the file, or 0 when the error concerns the file as a whole.
type ParseError struct {
	Row     int
	Message string
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
	}
	return e.Message
}

type Parser struct {
	validator *validator.Validate
}

func NewParser() *Parser {
	return &Parser{validator: util.NewValidator()}
}

// Parse converts CSV text into validated certificate inputs. The first
// invalid row aborts the parse; nothing is returned for the other rows.
func Parse(text string) ([]model.CertificateInput, error) {
	return NewParser().Parse(text)
}

func (p *Parser) Parse(text string) ([]model.CertificateInput, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, &ParseError{Message: "CSV must have at least a header row and one data row"}
	}

	header := splitLine(lines[0])
	for i := range header {
		header[i] = strings.ToLower(header[i])
	}

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, &ParseError{Message: "Missing required columns: " + strings.Join(missing, ", ")}
	}

	inputs := make([]model.CertificateInput, 0, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		row := i + 1
		values := splitLine(lines[i])
		if len(values) != len(header) {
			return nil, &ParseError{Row: row, Message: fmt.Sprintf("Expected %d columns, got %d", len(header), len(values))}
		}

		fields := make(map[string]string, len(header))
		for j, name := range header {
			fields[name] = values[j]
		}

		in := toInput(fields)
		if err := p.validator.Struct(in); err != nil {
			return nil, &ParseError{Row: row, Message: util.GenerateErrorMessagesAsString(err, nil)}
		}

		inputs = append(inputs, in)
	}

	return inputs, nil
}

func splitLine(line string) []string {
	values := strings.Split(line, ",")
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	return values
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, c := range RequiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

func toInput(fields map[string]string) model.CertificateInput {
	in := model.CertificateInput{
		CertificateNumber: fields["certificatenumber"],
		RecipientName:     fields["recipientname"],
		CourseName:        fields["coursename"],
		CompletionDate:    fields["completiondate"],
		IssueDate:         fields["issuedate"],
		Status:            fields["status"],
	}

	if v := fields["grade"]; v != "" {
		in.Grade = &v
	}
	if v := fields["instructorname"]; v != "" {
		in.InstructorName = &v
	}
	if in.Status == "" {
		in.Status = string(model.CertificateStatusActive)
	}

	return in
}

// Write exports certificates in template column order.
func Write(w io.Writer, certificates []model.Certificate) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, c := range certificates {
		record := []string{
			c.CertificateNumber,
			c.RecipientName,
			c.CourseName,
			c.CompletionDate.Format(constant.DateLayout),
			c.IssueDate.Format(constant.DateLayout),
			deref(c.Grade),
			deref(c.InstructorName),
			string(c.Status),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing CSV row %s: %w", c.CertificateNumber, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
