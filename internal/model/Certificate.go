package model

import (
	"strings"
	"time"

	"github.com/SeakMengs/CertVerify/internal/constant"
)

type CertificateStatus string

const (
	CertificateStatusActive  CertificateStatus = "active"
	CertificateStatusRevoked CertificateStatus = "revoked"
	CertificateStatusExpired CertificateStatus = "expired"
)

func (s CertificateStatus) IsValid() bool {
	switch s {
	case CertificateStatusActive, CertificateStatusRevoked, CertificateStatusExpired:
		return true
	}
	return false
}

type Certificate struct {
	BaseModel
	CertificateNumber string            `gorm:"type:text;not null;uniqueIndex" json:"certificateNumber"`
	RecipientName     string            `gorm:"type:text;not null" json:"recipientName"`
	CourseName        string            `gorm:"type:text;not null" json:"courseName"`
	IssueDate         time.Time         `gorm:"not null" json:"issueDate"`
	CompletionDate    time.Time         `gorm:"not null" json:"completionDate"`
	Grade             *string           `gorm:"type:text;default:null" json:"grade"`
	InstructorName    *string           `gorm:"type:text;default:null" json:"instructorName"`
	Status            CertificateStatus `gorm:"type:text;not null;default:'active'" json:"status"`
}

func (c Certificate) TableName() string {
	return "certificates"
}

func (c Certificate) IsActive() bool {
	return c.Status == CertificateStatusActive
}

// CertificateInput is the create schema: every certificate field except id.
// Both the JSON create endpoint and the CSV importer validate against it.
type CertificateInput struct {
	CertificateNumber string  `json:"certificateNumber" form:"certificateNumber" binding:"required,strNotEmpty"`
	RecipientName     string  `json:"recipientName" form:"recipientName" binding:"required,strNotEmpty"`
	CourseName        string  `json:"courseName" form:"courseName" binding:"required,strNotEmpty"`
	IssueDate         string  `json:"issueDate" form:"issueDate" binding:"required,cdate"`
	CompletionDate    string  `json:"completionDate" form:"completionDate" binding:"required,cdate"`
	Grade             *string `json:"grade,omitempty" form:"grade"`
	InstructorName    *string `json:"instructorName,omitempty" form:"instructorName"`
	Status            string  `json:"status,omitempty" form:"status" binding:"omitempty,certStatus"`
}

// ToModel converts a validated input. Status defaults to active.
func (in CertificateInput) ToModel() (*Certificate, error) {
	issueDate, err := ParseDate(in.IssueDate)
	if err != nil {
		return nil, err
	}

	completionDate, err := ParseDate(in.CompletionDate)
	if err != nil {
		return nil, err
	}

	status := CertificateStatus(strings.TrimSpace(in.Status))
	if status == "" {
		status = CertificateStatusActive
	}

	return &Certificate{
		CertificateNumber: strings.TrimSpace(in.CertificateNumber),
		RecipientName:     in.RecipientName,
		CourseName:        in.CourseName,
		IssueDate:         issueDate,
		CompletionDate:    completionDate,
		Grade:             in.Grade,
		InstructorName:    in.InstructorName,
		Status:            status,
	}, nil
}

// CertificateUpdate is a partial field set. Nil fields are left untouched.
type CertificateUpdate struct {
	CertificateNumber *string `json:"certificateNumber" binding:"omitempty,strNotEmpty"`
	RecipientName     *string `json:"recipientName" binding:"omitempty,strNotEmpty"`
	CourseName        *string `json:"courseName" binding:"omitempty,strNotEmpty"`
	IssueDate         *string `json:"issueDate" binding:"omitempty,cdate"`
	CompletionDate    *string `json:"completionDate" binding:"omitempty,cdate"`
	Grade             *string `json:"grade"`
	InstructorName    *string `json:"instructorName"`
	Status            *string `json:"status" binding:"omitempty,certStatus"`
}

func (u CertificateUpdate) IsEmpty() bool {
	return u.CertificateNumber == nil && u.RecipientName == nil && u.CourseName == nil &&
		u.IssueDate == nil && u.CompletionDate == nil && u.Grade == nil &&
		u.InstructorName == nil && u.Status == nil
}

// Apply merges the provided fields into c.
func (u CertificateUpdate) Apply(c *Certificate) error {
	if u.IssueDate != nil {
		d, err := ParseDate(*u.IssueDate)
		if err != nil {
			return err
		}
		c.IssueDate = d
	}
	if u.CompletionDate != nil {
		d, err := ParseDate(*u.CompletionDate)
		if err != nil {
			return err
		}
		c.CompletionDate = d
	}
	if u.CertificateNumber != nil {
		c.CertificateNumber = strings.TrimSpace(*u.CertificateNumber)
	}
	if u.RecipientName != nil {
		c.RecipientName = *u.RecipientName
	}
	if u.CourseName != nil {
		c.CourseName = *u.CourseName
	}
	if u.Grade != nil {
		c.Grade = u.Grade
	}
	if u.InstructorName != nil {
		c.InstructorName = u.InstructorName
	}
	if u.Status != nil {
		c.Status = CertificateStatus(strings.TrimSpace(*u.Status))
	}
	return nil
}

// Columns returns the column/value pairs an update writes, keyed by db column.
func (u CertificateUpdate) Columns() (map[string]any, error) {
	var c Certificate
	if err := u.Apply(&c); err != nil {
		return nil, err
	}

	cols := map[string]any{}
	if u.CertificateNumber != nil {
		cols["certificate_number"] = c.CertificateNumber
	}
	if u.RecipientName != nil {
		cols["recipient_name"] = c.RecipientName
	}
	if u.CourseName != nil {
		cols["course_name"] = c.CourseName
	}
	if u.IssueDate != nil {
		cols["issue_date"] = c.IssueDate
	}
	if u.CompletionDate != nil {
		cols["completion_date"] = c.CompletionDate
	}
	if u.Grade != nil {
		cols["grade"] = *u.Grade
	}
	if u.InstructorName != nil {
		cols["instructor_name"] = *u.InstructorName
	}
	if u.Status != nil {
		cols["status"] = string(c.Status)
	}
	return cols, nil
}

var dateLayouts = []string{constant.DateLayout, time.RFC3339, time.RFC3339Nano}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
