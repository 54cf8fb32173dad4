// Package domain defines the persistence models for team members, user
// accounts, evaluation criteria, evaluations, and coaching logs. These types
// are mapped with GORM and form the core data layer of the coaching backend.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Roles a UserAccount can hold. Role is the sole authorization attribute:
// admins manage members, accounts, and criteria; evaluators submit
// evaluations and coaching logs; agents acknowledge coaching logs.
const (
	RoleAdmin     = "admin"
	RoleEvaluator = "evaluator"
	RoleAgent     = "agent"
)

// ValidRole reports whether r is one of the three recognized roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEvaluator || r == RoleAgent
}

// Member is a call-center team member being evaluated and coached. Members
// are referenced by display name in evaluations and coaching logs, so
// deleting a member never cascades to historical records.
type Member struct {
	ID        string         `json:"id"   gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the database table name for Member.
func (Member) TableName() string { return "members" }

// UserAccount is an authenticated operator of the system. One row exists per
// identity; a missing row for a valid identity is recreated lazily with the
// agent role.
//
// PasswordHash is a bcrypt digest and is never serialized.
type UserAccount struct {
	ID           string         `json:"id"           gorm:"type:char(36);primaryKey"`
	DisplayName  string         `json:"display_name" gorm:"type:varchar(255);not null"`
	Email        string         `json:"email"        gorm:"type:varchar(320);not null;uniqueIndex:ux_users_email"`
	PasswordHash string         `json:"-"            gorm:"type:varchar(255);not null"`
	Role         string         `json:"role"         gorm:"type:varchar(16);not null;default:'agent';check:role IN ('admin','evaluator','agent')"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TableName returns the database table name for UserAccount.
func (UserAccount) TableName() string { return "users" }

// Criterion is one named skill dimension scored 1-5 in an evaluation.
// Criteria form an ordered, admin-editable sequence (Position ascending).
// Editing the sequence never rewrites scores stored on past evaluations.
type Criterion struct {
	ID        string    `json:"id"       gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"     gorm:"type:varchar(255);not null;uniqueIndex:ux_criteria_name"`
	Position  int       `json:"position" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Criterion.
func (Criterion) TableName() string { return "criteria" }

// ScoreMap maps criterion name to an integer score in [1,5]. It is stored as
// a JSON text column so an evaluation keeps exactly the keys that existed
// when it was created, regardless of later criteria edits.
type ScoreMap map[string]int

// Value implements driver.Valuer, serializing the map as JSON.
func (m ScoreMap) Value() (driver.Value, error) {
	if m == nil {
		m = ScoreMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner, accepting JSON stored as TEXT or BLOB.
func (m *ScoreMap) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = ScoreMap{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), m)
	case []byte:
		return json.Unmarshal(v, m)
	default:
		return errors.New("scores: unsupported column type")
	}
}

// Evaluation is a scored assessment of a member on a given date. Records are
// immutable after creation: there is no update path, and Total is fixed at
// submit time as the mean of Scores rounded to two decimals.
//
// Member and Evaluator hold display names, not foreign keys, so renaming or
// removing people leaves history intact.
type Evaluation struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	Member    string    `json:"member"    gorm:"type:varchar(255);not null;index"`
	Evaluator string    `json:"evaluator" gorm:"type:varchar(255);not null;index"`
	Date      string    `json:"date"      gorm:"type:char(10);not null;index"` // ISO "YYYY-MM-DD"
	Scores    ScoreMap  `json:"scores"    gorm:"type:text;not null"`
	Comments  string    `json:"comments"  gorm:"type:text"`
	Total     float64   `json:"total"     gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Evaluation.
func (Evaluation) TableName() string { return "evaluations" }

// CoachingLog records a coaching session for a member. After creation the
// only permitted mutation is the acknowledgement cycle: an agent sets or
// overwrites AgentAcknowledgement and AcknowledgementDate together; both are
// absent until then.
type CoachingLog struct {
	ID                   string    `json:"id"      gorm:"type:char(36);primaryKey"`
	Member               string    `json:"member"  gorm:"type:varchar(255);not null;index"`
	Coach                string    `json:"coach"   gorm:"type:varchar(255);not null;index"`
	Date                 string    `json:"date"    gorm:"type:char(10);not null;index"`
	Topics               string    `json:"topics"  gorm:"type:text;not null"`
	Actions              string    `json:"actions" gorm:"type:text"`
	Followup             *string   `json:"followup,omitempty"              gorm:"type:char(10)"`
	AgentAcknowledgement *string   `json:"agent_acknowledgement,omitempty" gorm:"type:text"`
	AcknowledgementDate  *string   `json:"acknowledgement_date,omitempty"  gorm:"type:char(10)"`
	CreatedBy            string    `json:"created_by" gorm:"type:char(36);not null;index"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TableName returns the database table name for CoachingLog.
func (CoachingLog) TableName() string { return "coaching_logs" }

// Acknowledged reports whether the acknowledgement cycle has completed.
// The two acknowledgement fields are either both present or both absent.
func (c *CoachingLog) Acknowledged() bool {
	return c.AgentAcknowledgement != nil && c.AcknowledgementDate != nil
}
