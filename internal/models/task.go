package models

import "time"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	default:
		return false
	}
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Task is a persisted task record and the wire response shape.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *Date        `json:"due_date"`
	EmployeeID  *int64       `json:"employee_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TaskSummary is the reduced projection embedded in employee responses.
type TaskSummary struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	Status   TaskStatus   `json:"status"`
	Priority TaskPriority `json:"priority"`
	DueDate  *Date        `json:"due_date"`
}

func (t Task) Summary() TaskSummary {
	return TaskSummary{ID: t.ID, Title: t.Title, Status: t.Status, Priority: t.Priority, DueDate: t.DueDate}
}

// TaskWithEmployee is the detail response: employee is null when the task is
// unassigned.
type TaskWithEmployee struct {
	Task
	Employee *EmployeeSummary `json:"employee"`
}

// NewTask is a validated create input.
type NewTask struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *Date
	EmployeeID  *int64
}

// TaskCreate is the raw create payload.
type TaskCreate struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	EmployeeID  *int64  `json:"employee_id"`
}

func (in TaskCreate) Validate() (NewTask, error) {
	var verrs ValidationErrors

	out := NewTask{
		Status:      TaskTodo,
		Priority:    PriorityMedium,
		Description: in.Description,
		EmployeeID:  in.EmployeeID,
	}
	out.Title = verrs.checkRequired("title", in.Title, 200)

	if in.Status != nil {
		s := TaskStatus(*in.Status)
		if !s.Valid() {
			verrs.add("status", "must be one of: todo, in_progress, done")
		} else {
			out.Status = s
		}
	}
	if in.Priority != nil {
		p := TaskPriority(*in.Priority)
		if !p.Valid() {
			verrs.add("priority", "must be one of: low, medium, high")
		} else {
			out.Priority = p
		}
	}
	if in.DueDate != nil {
		d, err := ParseDate(*in.DueDate)
		if err != nil {
			verrs.add("due_date", "must be YYYY-MM-DD")
		} else {
			out.DueDate = &d
		}
	}
	return out, verrs.orNil()
}

// TaskChanges is an explicit merge set. The nullable fields use Optional so
// an explicit null overwrites while an absent field is left alone.
type TaskChanges struct {
	Title       *string
	Status      *TaskStatus
	Priority    *TaskPriority
	Description Optional[string]
	DueDate     Optional[Date]
	EmployeeID  Optional[int64]
}

// TaskUpdate is the raw partial-update payload.
type TaskUpdate struct {
	Title       *string          `json:"title"`
	Status      *string          `json:"status"`
	Priority    *string          `json:"priority"`
	Description Optional[string] `json:"description"`
	DueDate     Optional[string] `json:"due_date"`
	EmployeeID  Optional[int64]  `json:"employee_id"`
}

func (in TaskUpdate) Validate() (TaskChanges, error) {
	var verrs ValidationErrors
	ch := TaskChanges{
		Description: in.Description,
		EmployeeID:  in.EmployeeID,
	}

	if in.Title != nil {
		v := verrs.checkRequired("title", *in.Title, 200)
		ch.Title = &v
	}
	if in.Status != nil {
		s := TaskStatus(*in.Status)
		if !s.Valid() {
			verrs.add("status", "must be one of: todo, in_progress, done")
		} else {
			ch.Status = &s
		}
	}
	if in.Priority != nil {
		p := TaskPriority(*in.Priority)
		if !p.Valid() {
			verrs.add("priority", "must be one of: low, medium, high")
		} else {
			ch.Priority = &p
		}
	}
	if in.DueDate.Present {
		if !in.DueDate.Valid {
			ch.DueDate = Null[Date]()
		} else if d, err := ParseDate(in.DueDate.Value); err != nil {
			verrs.add("due_date", "must be YYYY-MM-DD")
		} else {
			ch.DueDate = Some(d)
		}
	}
	return ch, verrs.orNil()
}
