package models

// TeacherDashboard aggregates the teacher's classes with counts, the
// grading backlog and the open question backlog.
type TeacherDashboard struct {
	Classes             []*Class      `json:"classes"`
	TotalClasses        int           `json:"total_classes"`
	PendingGrading      int           `json:"pending_grading"`
	UnansweredQuestions int           `json:"unanswered_questions"`
	RecentSubmissions   []*Submission `json:"recent_submissions"`
}

// StudentDashboard aggregates enrollments plus the assignments the student
// has not submitted, split by due date.
type StudentDashboard struct {
	Enrollments         []*Enrollment `json:"enrollments"`
	UpcomingAssignments []*Assignment `json:"upcoming_assignments"`
	MissingAssignments  []*Assignment `json:"missing_assignments"`
	RecentLessons       []*Lesson     `json:"recent_lessons"`
}
