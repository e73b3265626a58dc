// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"goaltracker/internal/models"
)

// ListMilestones aggregates the achievements feed from everything marked
// completed: goals, projects, project tasks, study topics and daily todos.
// The feed is derived on each request and never stored.
func (h *Handlers) ListMilestones(c echo.Context) error {
	ctx := c.Request().Context()
	feed := []models.Milestone{}

	goals, err := h.repo.ListCompletedGoals(ctx)
	if err != nil {
		return serverError(c)
	}
	for _, g := range goals {
		if g.CompletedAt == nil {
			continue
		}
		feed = append(feed, models.Milestone{
			ID:          "goal-" + g.ID,
			Title:       g.Title,
			Description: g.Description,
			Type:        models.MilestoneGoal,
			CompletedAt: *g.CompletedAt,
			Category:    g.Category,
			Priority:    g.Priority,
			SourceID:    g.ID,
		})
	}

	projects, err := h.repo.ListCompletedProjects(ctx)
	if err != nil {
		return serverError(c)
	}
	for _, p := range projects {
		if p.CompletedAt == nil {
			continue
		}
		feed = append(feed, models.Milestone{
			ID:          "project-" + p.ID,
			Title:       p.Name,
			Description: p.Description,
			Type:        models.MilestoneProject,
			CompletedAt: *p.CompletedAt,
			Priority:    p.Priority,
			SourceID:    p.ID,
		})
	}

	tasks, projectNames, err := h.repo.ListCompletedProjectTasks(ctx)
	if err != nil {
		return serverError(c)
	}
	for i, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		feed = append(feed, models.Milestone{
			ID:          "task-" + t.ID,
			Title:       projectNames[i] + ": " + t.Title,
			Description: t.Description,
			Type:        models.MilestoneProject,
			CompletedAt: *t.CompletedAt,
			Priority:    t.Priority,
			SourceID:    t.ID,
		})
	}

	topics, courseNames, err := h.repo.ListCompletedTopics(ctx)
	if err != nil {
		return serverError(c)
	}
	for i, t := range topics {
		if t.CompletedAt == nil {
			continue
		}
		feed = append(feed, models.Milestone{
			ID:          "topic-" + t.ID,
			Title:       "Study: " + t.Name,
			Description: courseNames[i],
			Type:        models.MilestoneStudy,
			CompletedAt: *t.CompletedAt,
			SourceID:    t.ID,
		})
	}

	todos, err := h.repo.ListCompletedDailyTodos(ctx)
	if err != nil {
		return serverError(c)
	}
	for _, t := range todos {
		if t.CompletedAt == nil {
			continue
		}
		feed = append(feed, models.Milestone{
			ID:          "todo-" + t.ID,
			Title:       t.Title,
			Description: t.Description,
			Type:        models.MilestoneDailyTodo,
			CompletedAt: *t.CompletedAt,
			Category:    t.Category,
			Priority:    t.Priority,
			SourceID:    t.ID,
		})
	}

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].CompletedAt.After(feed[j].CompletedAt)
	})
	return c.JSON(http.StatusOK, feed)
}
