package models

import "time"

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeActive, EmployeeInactive:
		return true
	default:
		return false
	}
}

// Employee is a persisted employee record. It doubles as the wire response
// shape: every field serializes, including the derived timestamps.
type Employee struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Role       string         `json:"role"`
	Department string         `json:"department"`
	Status     EmployeeStatus `json:"status"`
	DateJoined time.Time      `json:"date_joined"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// EmployeeSummary is the reduced projection embedded in task responses.
type EmployeeSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (e Employee) Summary() EmployeeSummary {
	return EmployeeSummary{ID: e.ID, Name: e.Name, Email: e.Email, Department: e.Department}
}

// EmployeeWithTasks is the detail response: the employee plus a summary of
// each task it owns. Never the full reciprocal task objects.
type EmployeeWithTasks struct {
	Employee
	Tasks []TaskSummary `json:"tasks"`
}

// NewEmployee is a validated create input.
type NewEmployee struct {
	Name       string
	Email      string
	Role       string
	Department string
	Status     EmployeeStatus
	DateJoined time.Time
}

// EmployeeCreate is the raw create payload.
type EmployeeCreate struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Status     *string `json:"status"`
	DateJoined *string `json:"date_joined"`
}

// Validate checks every field and returns either a fully-populated input or
// the complete list of offending fields.
func (in EmployeeCreate) Validate(now time.Time) (NewEmployee, error) {
	var verrs ValidationErrors

	out := NewEmployee{
		Status:     EmployeeActive,
		DateJoined: now,
	}
	out.Name = verrs.checkRequired("name", in.Name, 100)
	out.Email = verrs.checkEmail("email", in.Email)
	out.Role = verrs.checkRequired("role", in.Role, 100)
	out.Department = verrs.checkRequired("department", in.Department, 100)

	if in.Status != nil {
		s := EmployeeStatus(*in.Status)
		if !s.Valid() {
			verrs.add("status", "must be one of: active, inactive")
		} else {
			out.Status = s
		}
	}
	if in.DateJoined != nil {
		t, err := ParseDateJoined(*in.DateJoined)
		if err != nil {
			verrs.add("date_joined", "%v", err)
		} else {
			out.DateJoined = t
		}
	}
	return out, verrs.orNil()
}

// EmployeeChanges is an explicit merge set: nil means leave the stored value
// untouched. No employee field is nullable, so pointers suffice.
type EmployeeChanges struct {
	Name       *string
	Email      *string
	Role       *string
	Department *string
	Status     *EmployeeStatus
	DateJoined *time.Time
}

// EmployeeUpdate is the raw partial-update payload.
type EmployeeUpdate struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Status     *string `json:"status"`
	DateJoined *string `json:"date_joined"`
}

func (in EmployeeUpdate) Validate() (EmployeeChanges, error) {
	var verrs ValidationErrors
	var ch EmployeeChanges

	if in.Name != nil {
		v := verrs.checkRequired("name", *in.Name, 100)
		ch.Name = &v
	}
	if in.Email != nil {
		v := verrs.checkEmail("email", *in.Email)
		ch.Email = &v
	}
	if in.Role != nil {
		v := verrs.checkRequired("role", *in.Role, 100)
		ch.Role = &v
	}
	if in.Department != nil {
		v := verrs.checkRequired("department", *in.Department, 100)
		ch.Department = &v
	}
	if in.Status != nil {
		s := EmployeeStatus(*in.Status)
		if !s.Valid() {
			verrs.add("status", "must be one of: active, inactive")
		} else {
			ch.Status = &s
		}
	}
	if in.DateJoined != nil {
		t, err := ParseDateJoined(*in.DateJoined)
		if err != nil {
			verrs.add("date_joined", "%v", err)
		} else {
			ch.DateJoined = &t
		}
	}
	return ch, verrs.orNil()
}
