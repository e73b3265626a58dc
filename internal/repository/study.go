// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"goaltracker/internal/models"
)

// CreateCourse inserts a new course.
func (r *Repository) CreateCourse(ctx context.Context, c *models.Course) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO courses (id, name, color, description) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Color, c.Description)
	return err
}

// GetCourse retrieves a course by ID.
func (r *Repository) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var c models.Course
	err := r.db.GetContext(ctx, &c, `SELECT * FROM courses WHERE id = ?`, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return &c, nil
}

// UpdateCourse replaces all mutable fields of a course.
func (r *Repository) UpdateCourse(ctx context.Context, c *models.Course) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE courses SET name = ?, color = ?, description = ? WHERE id = ?`,
		c.Name, c.Color, c.Description, c.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCourse removes a course; its sessions cascade.
func (r *Repository) DeleteCourse(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	return err
}

// ListCourses returns all courses by name.
func (r *Repository) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses := []models.Course{}
	err := r.db.SelectContext(ctx, &courses, `SELECT * FROM courses ORDER BY name`)
	return courses, err
}

// CreateStudySession inserts a session together with its topics.
func (r *Repository) CreateStudySession(ctx context.Context, s *models.StudySession) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO study_sessions (id, course_id, day, start_time, end_time, date, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.CourseID, s.Day, s.StartTime, s.EndTime, s.Date, s.Notes)
	if err != nil {
		return err
	}
	for i := range s.Topics {
		s.Topics[i].SessionID = s.ID
		if err := r.CreateTopic(ctx, &s.Topics[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetStudySession retrieves a session with its topics.
func (r *Repository) GetStudySession(ctx context.Context, id string) (*models.StudySession, error) {
	var s models.StudySession
	err := r.db.GetContext(ctx, &s, `SELECT * FROM study_sessions WHERE id = ?`, id)
	if err != nil {
		return nil, wrapError(err)
	}
	s.Topics, err = r.ListTopics(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateStudySession replaces all mutable session fields. Topics are
// managed through their own methods.
func (r *Repository) UpdateStudySession(ctx context.Context, s *models.StudySession) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE study_sessions SET course_id = ?, day = ?, start_time = ?, end_time = ?, date = ?, notes = ?
		 WHERE id = ?`,
		s.CourseID, s.Day, s.StartTime, s.EndTime, s.Date, s.Notes, s.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteStudySession removes a session; its topics cascade.
func (r *Repository) DeleteStudySession(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM study_sessions WHERE id = ?`, id)
	return err
}

// ListStudySessions returns all sessions with their topics.
func (r *Repository) ListStudySessions(ctx context.Context) ([]models.StudySession, error) {
	sessions := []models.StudySession{}
	if err := r.db.SelectContext(ctx, &sessions, `SELECT * FROM study_sessions ORDER BY date, start_time`); err != nil {
		return nil, err
	}
	for i := range sessions {
		topics, err := r.ListTopics(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Topics = topics
	}
	return sessions, nil
}

// CreateTopic inserts a topic under a session.
func (r *Repository) CreateTopic(ctx context.Context, t *models.Topic) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO topics (id, session_id, name, completed, completed_at, notes)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.SessionID, t.Name, t.Completed, t.CompletedAt, t.Notes)
	return err
}

// SetTopicCompleted toggles a topic's completion and stamps the time.
func (r *Repository) SetTopicCompleted(ctx context.Context, id string, completed bool) error {
	var completedAt *time.Time
	if completed {
		now := time.Now().UTC()
		completedAt = &now
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE topics SET completed = ?, completed_at = ? WHERE id = ?`,
		completed, completedAt, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTopic removes a topic by ID.
func (r *Repository) DeleteTopic(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM topics WHERE id = ?`, id)
	return err
}

// ListTopics returns the topics of a session in insertion order.
func (r *Repository) ListTopics(ctx context.Context, sessionID string) ([]models.Topic, error) {
	topics := []models.Topic{}
	err := r.db.SelectContext(ctx, &topics,
		`SELECT * FROM topics WHERE session_id = ? ORDER BY rowid`, sessionID)
	return topics, err
}

// completedTopicRow joins a completed topic with its course name for the
// milestone feed.
type completedTopicRow struct {
	models.Topic
	CourseName string `db:"course_name"`
}

// ListCompletedTopics returns completed topics across all sessions
// together with the course they belong to.
func (r *Repository) ListCompletedTopics(ctx context.Context) ([]models.Topic, []string, error) {
	rows := []completedTopicRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT t.*, c.name AS course_name
		 FROM topics t
		 JOIN study_sessions s ON s.id = t.session_id
		 JOIN courses c ON c.id = s.course_id
		 WHERE t.completed = 1`)
	if err != nil {
		return nil, nil, err
	}
	topics := make([]models.Topic, len(rows))
	names := make([]string, len(rows))
	for i, row := range rows {
		topics[i] = row.Topic
		names[i] = row.CourseName
	}
	return topics, names, nil
}
