package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack/internal/domain"
	"jobtrack/internal/service"
)

// TestHiringPipeline walks one application from submission to hired,
// checking the side effects at every step.
func TestHiringPipeline(t *testing.T) {
	e := newEnv(t)
	_, hr := e.seedUser(t, "hr", domain.RoleHR)
	interviewer, _ := e.seedUser(t, "ivan", domain.RoleInterviewer)
	_, _, candActor := e.seedCandidate(t, "alice")
	job := e.seedOpenJob(t, hr)

	app, err := e.applications.Apply(context.Background(), candActor, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationApplied, app.Status)

	ns, err := e.notifications.ListMine(context.Background(), candActor)
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, "Application submitted", ns[0].Message)
	assert.Equal(t, domain.NotificationInfo, ns[0].Type)

	app, err = e.applications.UpdateState(context.Background(), hr, app.ID, domain.ApplicationShortlisted)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationShortlisted, app.Status)

	when := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	iv, err := e.interviews.Schedule(context.Background(), hr, service.ScheduleInterviewInput{
		ApplicationID: app.ID,
		InterviewerID: interviewer.ID,
		ScheduledAt:   when,
		Type:          "technical",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InterviewScheduled, iv.Status)

	// scheduling forces the application forward
	stored, err := e.store.Applications.ByID(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationInterviewScheduled, stored.Status)

	ns, err = e.notifications.ListMine(context.Background(), candActor)
	require.NoError(t, err)
	require.Len(t, ns, 3)
	msgs := []string{ns[0].Message, ns[1].Message, ns[2].Message}
	assert.Contains(t, msgs, "Interview scheduled")
	assert.Contains(t, msgs, "Application moved to shortlisted")

	app, err = e.applications.UpdateState(context.Background(), hr, app.ID, domain.ApplicationHired)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationHired, app.Status)

	// terminal: nothing moves a hired application
	_, err = e.applications.UpdateState(context.Background(), hr, app.ID, domain.ApplicationRejected)
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidTransition, kindOf(err))

	an, err := e.jobs.Analytics(context.Background(), hr, job.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, an.Applications)
	assert.EqualValues(t, 1, an.Interviews)
}

func TestApply_RequiresProfileAndOpenJob(t *testing.T) {
	e := newEnv(t)
	_, hr := e.seedUser(t, "hr", domain.RoleHR)
	job := e.seedOpenJob(t, hr)

	// candidate without a profile
	_, bare := e.seedUser(t, "bob", domain.RoleCandidate)
	_, err := e.applications.Apply(context.Background(), bare, job.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, kindOf(err))

	// draft job rejects applications
	co, err := e.companies.Create(context.Background(), hr, service.CompanyInput{Name: "Initech"})
	require.NoError(t, err)
	draft, err := e.jobs.Create(context.Background(), hr, service.CreateJobInput{
		CompanyID: co.ID, Title: "Intern", Description: "x",
	})
	require.NoError(t, err)

	_, _, candActor := e.seedCandidate(t, "alice")
	_, err = e.applications.Apply(context.Background(), candActor, draft.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidState, kindOf(err))
}

func TestApply_DuplicateForbidden(t *testing.T) {
	e := newEnv(t)
	_, hr := e.seedUser(t, "hr", domain.RoleHR)
	job := e.seedOpenJob(t, hr)
	_, _, candActor := e.seedCandidate(t, "alice")

	_, err := e.applications.Apply(context.Background(), candActor, job.ID)
	require.NoError(t, err)

	_, err = e.applications.Apply(context.Background(), candActor, job.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, kindOf(err))
}

func TestUpdateApplication_OwnershipEnforced(t *testing.T) {
	e := newEnv(t)
	_, owner := e.seedUser(t, "hr", domain.RoleHR)
	_, otherHR := e.seedUser(t, "hr2", domain.RoleHR)
	_, admin := e.seedUser(t, "root", domain.RoleAdmin)
	job := e.seedOpenJob(t, owner)
	_, _, candActor := e.seedCandidate(t, "alice")

	app, err := e.applications.Apply(context.Background(), candActor, job.ID)
	require.NoError(t, err)

	// candidates cannot drive the pipeline at all
	_, err = e.applications.UpdateState(context.Background(), candActor, app.ID, domain.ApplicationShortlisted)
	require.Error(t, err)
	assert.Equal(t, domain.KindPermissionDenied, kindOf(err))

	// an HR user who does not own the job is denied
	_, err = e.applications.UpdateState(context.Background(), otherHR, app.ID, domain.ApplicationShortlisted)
	require.Error(t, err)
	assert.Equal(t, domain.KindPermissionDenied, kindOf(err))

	// admins bypass ownership
	_, err = e.applications.UpdateState(context.Background(), admin, app.ID, domain.ApplicationShortlisted)
	assert.NoError(t, err)
}

func TestBulkUpdate_IsolatesFailures(t *testing.T) {
	e := newEnv(t)
	_, hr := e.seedUser(t, "hr", domain.RoleHR)
	job := e.seedOpenJob(t, hr)

	var ids []uint
	for _, name := range []string{"alice", "bob", "carol"} {
		_, _, actor := e.seedCandidate(t, name)
		app, err := e.applications.Apply(context.Background(), actor, job.ID)
		require.NoError(t, err)
		ids = append(ids, app.ID)
	}

	// push the middle one to a terminal state first
	_, err := e.applications.UpdateState(context.Background(), hr, ids[1], domain.ApplicationRejected)
	require.NoError(t, err)

	res := e.applications.BulkUpdateState(context.Background(), hr, ids, domain.ApplicationShortlisted)
	assert.Equal(t, 3, res.Attempted)
	assert.Equal(t, 2, res.Updated)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, ids[1], res.Failed[0].ID)

	// the successes around the failure are committed
	for _, id := range []uint{ids[0], ids[2]} {
		app, err := e.store.Applications.ByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationShortlisted, app.Status)
	}
	app, err := e.store.Applications.ByID(context.Background(), ids[1])
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationRejected, app.Status)
}

func TestScheduleInterview_CalendarConflict(t *testing.T) {
	e := newEnv(t)
	_, hr := e.seedUser(t, "hr", domain.RoleHR)
	interviewer, _ := e.seedUser(t, "ivan", domain.RoleInterviewer)
	job := e.seedOpenJob(t, hr)

	when := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	_, _, alice := e.seedCandidate(t, "alice")
	app1, err := e.applications.Apply(context.Background(), alice, job.ID)
	require.NoError(t, err)
	_, err = e.interviews.Schedule(context.Background(), hr, service.ScheduleInterviewInput{
		ApplicationID: app1.ID, InterviewerID: interviewer.ID, ScheduledAt: when, Type: "technical",
	})
	require.NoError(t, err)

	_, _, bob := e.seedCandidate(t, "bob")
	app2, err := e.applications.Apply(context.Background(), bob, job.ID)
	require.NoError(t, err)
	_, err = e.interviews.Schedule(context.Background(), hr, service.ScheduleInterviewInput{
		ApplicationID: app2.ID, InterviewerID: interviewer.ID, ScheduledAt: when, Type: "technical",
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, kindOf(err))

	// nothing leaked from the rolled-back attempt
	stored, err := e.store.Applications.ByID(context.Background(), app2.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationApplied, stored.Status)
}

func TestScheduleInterview_UnknownInterviewer(t *testing.T) {
	e := newEnv(t)
	_, hr := e.seedUser(t, "hr", domain.RoleHR)
	job := e.seedOpenJob(t, hr)
	_, _, candActor := e.seedCandidate(t, "alice")
	app, err := e.applications.Apply(context.Background(), candActor, job.ID)
	require.NoError(t, err)

	_, err = e.interviews.Schedule(context.Background(), hr, service.ScheduleInterviewInput{
		ApplicationID: app.ID, InterviewerID: 9999, ScheduledAt: time.Now().Add(time.Hour), Type: "technical",
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, kindOf(err))
}

func TestUpdateInterview_StatusThroughTable(t *testing.T) {
	e := newEnv(t)
	_, hr := e.seedUser(t, "hr", domain.RoleHR)
	interviewer, ivActor := e.seedUser(t, "ivan", domain.RoleInterviewer)
	job := e.seedOpenJob(t, hr)
	_, _, candActor := e.seedCandidate(t, "alice")
	app, err := e.applications.Apply(context.Background(), candActor, job.ID)
	require.NoError(t, err)

	iv, err := e.interviews.Schedule(context.Background(), hr, service.ScheduleInterviewInput{
		ApplicationID: app.ID, InterviewerID: interviewer.ID,
		ScheduledAt: time.Now().Add(time.Hour), Type: "technical",
	})
	require.NoError(t, err)

	resched := "rescheduled"
	later := time.Now().Add(72 * time.Hour).Truncate(time.Second)
	iv, err = e.interviews.Update(context.Background(), ivActor, iv.ID, service.UpdateInterviewInput{
		Status: &resched, ScheduledAt: &later,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InterviewRescheduled, iv.Status)
	assert.True(t, iv.ScheduledAt.Equal(later))

	done := "completed"
	iv, err = e.interviews.Update(context.Background(), ivActor, iv.ID, service.UpdateInterviewInput{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, domain.InterviewCompleted, iv.Status)

	// completed is terminal
	back := "scheduled"
	_, err = e.interviews.Update(context.Background(), ivActor, iv.ID, service.UpdateInterviewInput{Status: &back})
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidTransition, kindOf(err))
}

func TestSubmitFeedback_AssignedInterviewerWriteOnce(t *testing.T) {
	e := newEnv(t)
	_, hr := e.seedUser(t, "hr", domain.RoleHR)
	interviewer, ivActor := e.seedUser(t, "ivan", domain.RoleInterviewer)
	_, otherIv := e.seedUser(t, "judy", domain.RoleInterviewer)
	job := e.seedOpenJob(t, hr)
	_, _, candActor := e.seedCandidate(t, "alice")
	app, err := e.applications.Apply(context.Background(), candActor, job.ID)
	require.NoError(t, err)

	iv, err := e.interviews.Schedule(context.Background(), hr, service.ScheduleInterviewInput{
		ApplicationID: app.ID, InterviewerID: interviewer.ID,
		ScheduledAt: time.Now().Add(time.Hour), Type: "technical",
	})
	require.NoError(t, err)

	rating := 8.5
	in := service.FeedbackInput{
		InterviewID: iv.ID, Rating: &rating, Comments: "solid", Recommendation: "hire",
	}

	// only the assigned interviewer may write
	_, err = e.interviews.SubmitFeedback(context.Background(), otherIv, in)
	require.Error(t, err)
	assert.Equal(t, domain.KindPermissionDenied, kindOf(err))

	// hr cannot submit feedback either
	_, err = e.interviews.SubmitFeedback(context.Background(), hr, in)
	require.Error(t, err)
	assert.Equal(t, domain.KindPermissionDenied, kindOf(err))

	fb, err := e.interviews.SubmitFeedback(context.Background(), ivActor, in)
	require.NoError(t, err)
	assert.Equal(t, iv.ID, fb.InterviewID)

	_, err = e.interviews.SubmitFeedback(context.Background(), ivActor, in)
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, kindOf(err))
}

func TestJobLifecycle_OwnershipAndTerminal(t *testing.T) {
	e := newEnv(t)
	_, owner := e.seedUser(t, "hr", domain.RoleHR)
	_, otherHR := e.seedUser(t, "hr2", domain.RoleHR)

	co, err := e.companies.Create(context.Background(), owner, service.CompanyInput{Name: "Acme"})
	require.NoError(t, err)
	job, err := e.jobs.Create(context.Background(), owner, service.CreateJobInput{
		CompanyID: co.ID, Title: "SRE", Description: "x",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.JobDraft, job.Status)

	_, err = e.jobs.UpdateState(context.Background(), otherHR, job.ID, "open")
	require.Error(t, err)
	assert.Equal(t, domain.KindPermissionDenied, kindOf(err))

	for _, next := range []string{"open", "closed", "archived"} {
		job, err = e.jobs.UpdateState(context.Background(), owner, job.ID, next)
		require.NoError(t, err)
	}
	assert.Equal(t, domain.JobArchived, job.Status)

	_, err = e.jobs.UpdateState(context.Background(), owner, job.ID, "open")
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidTransition, kindOf(err))
}

func TestListApplications_RoleScoping(t *testing.T) {
	e := newEnv(t)
	_, hr := e.seedUser(t, "hr", domain.RoleHR)
	_, otherHR := e.seedUser(t, "hr2", domain.RoleHR)
	_, admin := e.seedUser(t, "root", domain.RoleAdmin)
	job := e.seedOpenJob(t, hr)

	_, _, alice := e.seedCandidate(t, "alice")
	_, err := e.applications.Apply(context.Background(), alice, job.ID)
	require.NoError(t, err)
	_, _, bob := e.seedCandidate(t, "bob")
	_, err = e.applications.Apply(context.Background(), bob, job.ID)
	require.NoError(t, err)

	apps, err := e.applications.List(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	apps, err = e.applications.List(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	apps, err = e.applications.List(context.Background(), hr)
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	apps, err = e.applications.List(context.Background(), otherHR)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestNotifications_ScopedToOwnProfile(t *testing.T) {
	e := newEnv(t)
	_, hr := e.seedUser(t, "hr", domain.RoleHR)
	job := e.seedOpenJob(t, hr)

	_, _, alice := e.seedCandidate(t, "alice")
	_, err := e.applications.Apply(context.Background(), alice, job.ID)
	require.NoError(t, err)
	_, _, bob := e.seedCandidate(t, "bob")

	ns, err := e.notifications.ListMine(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, ns, 1)

	// bob sees nothing and cannot read alice's notification
	got, err := e.notifications.ListMine(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = e.notifications.MarkRead(context.Background(), bob, ns[0].ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, kindOf(err))

	read, err := e.notifications.MarkRead(context.Background(), alice, ns[0].ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
}
