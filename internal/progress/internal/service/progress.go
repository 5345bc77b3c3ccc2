// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/progress/internal/domain"
	"github.com/ecodeclub/hug/internal/progress/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrRecordNotFound  = repository.ErrRecordNotFound
	ErrAlreadyEnrolled = repository.ErrDuplicate
	ErrNotEnrolled     = errors.New("没有报名这门课程")
	ErrCourseNotFound  = errors.New("课程不存在")
	ErrLessonNotFound  = errors.New("课时不存在")
)

const recentLessonsLimit = 5

//go:generate mockgen -source=./progress.go -package=progressmocks -destination=../../mocks/progress.mock.go Service
type Service interface {
	Enroll(ctx context.Context, uid, courseId int64) (domain.Enrollment, error)
	UpdateProgress(ctx context.Context, p domain.LessonProgress) (domain.LessonProgress, error)
	CompleteLesson(ctx context.Context, uid, lessonId int64) (domain.CompleteResult, error)
	Sync(ctx context.Context, uid int64, items []domain.SyncItem) (domain.SyncResult, error)
	// LastSyncAt 没有任何学习记录的时候返回 0
	LastSyncAt(ctx context.Context, uid int64) (int64, error)
	MyProgress(ctx context.Context, uid int64) ([]domain.Enrollment, domain.Summary, error)
	CourseProgress(ctx context.Context, uid, courseId int64) (domain.CourseProgress, error)
	ModuleLessons(ctx context.Context, uid, moduleId int64) ([]domain.ModuleLesson, error)

	Enrollment(ctx context.Context, uid, courseId int64) (domain.Enrollment, error)
	LatestCompletedEnrollment(ctx context.Context, uid int64) (domain.Enrollment, error)
	RecentCompletedLessons(ctx context.Context, uid int64, limit int) ([]domain.LessonProgress, error)
	// ContinueLearning 最近学习的、还没有完成的课程，没有的时候 Id 为 0
	ContinueLearning(ctx context.Context, uid int64) (domain.Enrollment, error)
	LessonProgressByIds(ctx context.Context, uid int64, lessonIds []int64) (map[int64]domain.LessonProgress, error)
	// CompletedLessonCount since 之后（毫秒）完成的课时数量
	CompletedLessonCount(ctx context.Context, uid int64, since int64) (int64, error)
}

type progressService struct {
	repo      repository.ProgressRepository
	courseSvc course.Service
	gameSvc   gamification.Service
	logger    *elog.Component
}

func NewService(repo repository.ProgressRepository,
	courseSvc course.Service,
	gameSvc gamification.Service) Service {
	return &progressService{
		repo:      repo,
		courseSvc: courseSvc,
		gameSvc:   gameSvc,
		logger:    elog.DefaultLogger,
	}
}

func (s *progressService) Enroll(ctx context.Context, uid, courseId int64) (domain.Enrollment, error) {
	c, err := s.courseSvc.CourseOutline(ctx, courseId)
	if errors.Is(err, course.ErrRecordNotFound) {
		return domain.Enrollment{}, ErrCourseNotFound
	}
	if err != nil {
		return domain.Enrollment{}, err
	}
	trackId, lessonId := c.FirstLesson()
	e := domain.Enrollment{
		Uid:             uid,
		CourseId:        courseId,
		Status:          domain.StatusNotStarted,
		CurrentTrackId:  trackId,
		CurrentLessonId: lessonId,
		LastAccessedAt:  time.Now().UnixMilli(),
	}
	e.Id, err = s.repo.CreateEnrollment(ctx, e)
	if err != nil {
		return domain.Enrollment{}, err
	}
	if _, _, err = s.gameSvc.Metrics(ctx, uid); err != nil {
		return domain.Enrollment{}, fmt.Errorf("初始化学习数据失败: %w", err)
	}
	e.Course = c
	return e, nil
}

// locate 找到课时和对应的报名记录
func (s *progressService) locate(ctx context.Context, uid, lessonId int64) (course.LessonLocation, domain.Enrollment, error) {
	loc, err := s.courseSvc.LessonLocation(ctx, lessonId)
	if errors.Is(err, course.ErrRecordNotFound) {
		return loc, domain.Enrollment{}, ErrLessonNotFound
	}
	if err != nil {
		return loc, domain.Enrollment{}, err
	}
	e, err := s.repo.Enrollment(ctx, uid, loc.CourseId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return loc, e, ErrNotEnrolled
	}
	return loc, e, err
}

// previous 之前的进度，没有的时候返回零值
func (s *progressService) previous(ctx context.Context, uid, lessonId int64) (domain.LessonProgress, error) {
	p, err := s.repo.Progress(ctx, uid, lessonId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.LessonProgress{}, nil
	}
	return p, err
}

func (s *progressService) UpdateProgress(ctx context.Context, p domain.LessonProgress) (domain.LessonProgress, error) {
	loc, e, err := s.locate(ctx, p.Uid, p.LessonId)
	if err != nil {
		return domain.LessonProgress{}, err
	}
	prev, err := s.previous(ctx, p.Uid, p.LessonId)
	if err != nil {
		return domain.LessonProgress{}, err
	}
	now := time.Now().UnixMilli()
	p.EnrollmentId = e.Id
	p.Status = domain.StatusOf(p.ProgressPercentage)
	p.XpEarned = domain.ProgressXp(p.ProgressPercentage)
	p.LastAccessedAt = now
	switch {
	case prev.Completed():
		// 已经完成的课时不会因为重新学习而回退
		p.Status = domain.StatusCompleted
		p.ProgressPercentage = max(p.ProgressPercentage, prev.ProgressPercentage)
		p.XpEarned = max(p.XpEarned, prev.XpEarned)
		p.CompletedAt = prev.CompletedAt
	case p.Status == domain.StatusCompleted:
		p.CompletedAt = now
	}
	res, err := s.repo.SaveProgress(ctx, p)
	if err != nil {
		return domain.LessonProgress{}, err
	}
	res.Lesson = loc.Lesson
	// 进度到 100 只是标记完成，课时奖励留给 complete 或者离线同步领取
	if p.Status == domain.StatusCompleted && !prev.Completed() {
		return res, s.advance(ctx, e, loc.TrackId, loc.Lesson.Id, now)
	}
	e.CurrentTrackId, e.CurrentLessonId = loc.TrackId, loc.Lesson.Id
	e.LastAccessedAt = now
	if e.Status == domain.StatusNotStarted {
		e.Status = domain.StatusInProgress
	}
	if err = s.repo.UpdateEnrollment(ctx, e); err != nil {
		return domain.LessonProgress{}, err
	}
	return res, nil
}

func (s *progressService) CompleteLesson(ctx context.Context, uid, lessonId int64) (domain.CompleteResult, error) {
	loc, e, err := s.locate(ctx, uid, lessonId)
	if err != nil {
		return domain.CompleteResult{}, err
	}
	prev, err := s.previous(ctx, uid, lessonId)
	if err != nil {
		return domain.CompleteResult{}, err
	}
	now := time.Now().UnixMilli()
	lesson := loc.Lesson
	xp := domain.LessonXp(lesson)
	p := domain.LessonProgress{
		Uid:                uid,
		LessonId:           lessonId,
		EnrollmentId:       e.Id,
		Status:             domain.StatusCompleted,
		ProgressPercentage: 100,
		LastSlideIndex:     prev.LastSlideIndex,
		TimeSpentSeconds:   prev.TimeSpentSeconds,
		XpEarned:           xp,
		CompletedAt:        now,
		LastAccessedAt:     now,
	}
	if prev.Completed() {
		p.CompletedAt = prev.CompletedAt
	}
	saved, err := s.repo.SaveProgress(ctx, p)
	if err != nil {
		return domain.CompleteResult{}, err
	}
	saved.Lesson = lesson
	res := domain.CompleteResult{
		Progress:     saved,
		NextLessonId: lesson.NextLessonId,
	}
	// 奖励只看有没有领取过，不看状态，进度上报到 100 的课时也能在这里领取
	first, err := s.repo.ClaimReward(ctx, uid, lessonId)
	if err != nil {
		return domain.CompleteResult{}, err
	}
	if first {
		reward, err := s.gameSvc.Reward(ctx, uid, gamification.Reward{
			Xp:               xp,
			Karma:            domain.LessonKarma,
			Source:           domain.RewardSource,
			SourceId:         lessonId,
			Description:      fmt.Sprintf("Completed lesson: %s", lesson.Name),
			LessonsCompleted: 1,
			Minutes:          int64(lesson.DurationMinutes),
		})
		if err != nil {
			s.releaseRewards(ctx, uid, lessonId)
			return domain.CompleteResult{}, err
		}
		res.Xp, res.Karma, res.Badges = reward.Xp, reward.Karma, reward.Badges
	}
	currentTrack, currentLesson := loc.TrackId, lessonId
	if lesson.NextLessonId > 0 {
		currentLesson = lesson.NextLessonId
	}
	if err = s.advance(ctx, e, currentTrack, currentLesson, now); err != nil {
		return domain.CompleteResult{}, err
	}
	return res, nil
}

// releaseRewards 发放失败之后归还领取标记，归还失败只能记录日志
func (s *progressService) releaseRewards(ctx context.Context, uid int64, lessonIds ...int64) {
	for _, id := range lessonIds {
		if err := s.repo.ReleaseReward(ctx, uid, id); err != nil {
			s.logger.Error("归还课时奖励失败",
				elog.FieldErr(err),
				elog.Int64("uid", uid),
				elog.Int64("lessonId", id))
		}
	}
}

// advance 重新计算课程的完成度，课程第一次完成的时候记一次课程完成
func (s *progressService) advance(ctx context.Context, e domain.Enrollment, trackId, lessonId, now int64) error {
	outline, err := s.courseSvc.CourseOutline(ctx, e.CourseId)
	if err != nil {
		return err
	}
	ids := outline.LessonIds()
	completed, err := s.repo.CountCompleted(ctx, e.Uid, ids)
	if err != nil {
		return err
	}
	wasCompleted := e.Completed()
	e = e.Advance(completed, int64(len(ids)), now)
	if trackId > 0 {
		e.CurrentTrackId, e.CurrentLessonId = trackId, lessonId
	}
	if err = s.repo.UpdateEnrollment(ctx, e); err != nil {
		return err
	}
	if !wasCompleted && e.Completed() {
		_, err = s.gameSvc.Reward(ctx, e.Uid, gamification.Reward{
			Source:           "course",
			SourceId:         e.CourseId,
			Description:      fmt.Sprintf("Completed course: %s", outline.Name),
			CoursesCompleted: 1,
		})
	}
	return err
}

func (s *progressService) Sync(ctx context.Context, uid int64, items []domain.SyncItem) (domain.SyncResult, error) {
	var res domain.SyncResult
	reward := gamification.Reward{Source: domain.RewardSource}
	touched := make(map[int64]domain.Enrollment)
	now := time.Now().UnixMilli()
	for _, item := range items {
		entry, e, err := s.syncOne(ctx, uid, item, now)
		if err != nil {
			s.logger.Warn("同步学习进度失败",
				elog.FieldErr(err),
				elog.Int64("uid", uid),
				elog.Int64("lessonId", item.LessonId))
			res.Failed++
			continue
		}
		res.Synced++
		touched[e.Id] = e
		if entry.Xp == 0 && entry.Karma == 0 {
			continue
		}
		reward.Entries = append(reward.Entries, entry.RewardEntry)
		reward.Xp += entry.Xp
		reward.Karma += entry.Karma
		reward.LessonsCompleted++
		reward.Minutes += entry.minutes
	}
	if len(reward.Entries) > 0 {
		rr, err := s.gameSvc.Reward(ctx, uid, reward)
		if err != nil {
			s.releaseRewards(ctx, uid, slice.Map(reward.Entries, func(idx int, src gamification.RewardEntry) int64 {
				return src.SourceId
			})...)
			return res, err
		}
		res.Xp, res.Karma, res.Badges = rr.Xp, rr.Karma, rr.Badges
	}
	for _, e := range touched {
		if err := s.advance(ctx, e, 0, 0, now); err != nil {
			return res, err
		}
	}
	return res, nil
}

type syncEntry struct {
	gamification.RewardEntry
	minutes int64
}

// syncOne 同步一条记录，新完成的课时返回对应的奖励
func (s *progressService) syncOne(ctx context.Context, uid int64, item domain.SyncItem, now int64) (syncEntry, domain.Enrollment, error) {
	loc, e, err := s.locate(ctx, uid, item.LessonId)
	if err != nil {
		return syncEntry{}, e, err
	}
	prev, err := s.previous(ctx, uid, item.LessonId)
	if err != nil {
		return syncEntry{}, e, err
	}
	p := domain.LessonProgress{
		Uid:                uid,
		LessonId:           item.LessonId,
		EnrollmentId:       e.Id,
		Status:             domain.StatusInProgress,
		ProgressPercentage: item.ProgressPercentage,
		TimeSpentSeconds:   item.TimeSpentSeconds,
		LastAccessedAt:     now,
	}
	completed := item.IsCompleted || prev.Completed()
	if completed {
		p.Status = domain.StatusCompleted
		p.ProgressPercentage = 100
		p.XpEarned = domain.LessonXp(loc.Lesson)
		p.CompletedAt = item.CompletedAt
		if prev.Completed() {
			p.CompletedAt = prev.CompletedAt
		}
		if p.CompletedAt == 0 {
			p.CompletedAt = now
		}
	}
	if _, err = s.repo.SaveProgress(ctx, p); err != nil {
		return syncEntry{}, e, err
	}
	if !completed {
		return syncEntry{}, e, nil
	}
	first, err := s.repo.ClaimReward(ctx, uid, item.LessonId)
	if err != nil || !first {
		return syncEntry{}, e, err
	}
	return syncEntry{
		RewardEntry: gamification.RewardEntry{
			Xp:          p.XpEarned,
			Karma:       domain.LessonKarma,
			SourceId:    item.LessonId,
			Description: fmt.Sprintf("Synced completion: %s", loc.Lesson.Name),
		},
		minutes: int64(loc.Lesson.DurationMinutes),
	}, e, nil
}

func (s *progressService) LastSyncAt(ctx context.Context, uid int64) (int64, error) {
	p, err := s.repo.LatestAccessed(ctx, uid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return 0, nil
	}
	return p.LastAccessedAt, err
}

func (s *progressService) MyProgress(ctx context.Context, uid int64) ([]domain.Enrollment, domain.Summary, error) {
	es, err := s.repo.Enrollments(ctx, uid)
	if err != nil {
		return nil, domain.Summary{}, err
	}
	es, err = s.fillEnrollments(ctx, es)
	if err != nil {
		return nil, domain.Summary{}, err
	}
	m, _, err := s.gameSvc.Metrics(ctx, uid)
	if err != nil {
		return nil, domain.Summary{}, err
	}
	now := time.Now()
	days, err := s.gameSvc.StreakDays(ctx, uid,
		now.AddDate(0, 0, -6).Format(time.DateOnly), now.Format(time.DateOnly))
	if err != nil {
		return nil, domain.Summary{}, err
	}
	summary := domain.Summary{
		CoursesEnrolled:       int64(len(es)),
		TotalLessonsCompleted: m.TotalLessonsCompleted,
		TotalTimeSpentMinutes: m.TotalTimeSpentMinutes,
	}
	for _, e := range es {
		if e.Completed() {
			summary.CoursesCompleted++
		}
	}
	for _, d := range days {
		summary.ThisWeekMinutes += d.TimeSpentMinutes
	}
	return es, summary, nil
}

// fillEnrollments 补充课程和当前课时
func (s *progressService) fillEnrollments(ctx context.Context, es []domain.Enrollment) ([]domain.Enrollment, error) {
	if len(es) == 0 {
		return es, nil
	}
	cs, err := s.courseSvc.CoursesByIds(ctx, slice.Map(es, func(idx int, src domain.Enrollment) int64 {
		return src.CourseId
	}))
	if err != nil {
		return nil, err
	}
	courses := make(map[int64]course.Course, len(cs))
	for _, c := range cs {
		courses[c.Id] = c
	}
	lessonIds := make([]int64, 0, len(es))
	for _, e := range es {
		if e.CurrentLessonId > 0 {
			lessonIds = append(lessonIds, e.CurrentLessonId)
		}
	}
	lessons, err := s.courseSvc.LessonsByIds(ctx, lessonIds)
	if err != nil {
		return nil, err
	}
	for i := range es {
		es[i].Course = courses[es[i].CourseId]
		es[i].CurrentLesson = lessons[es[i].CurrentLessonId]
	}
	return es, nil
}

func (s *progressService) CourseProgress(ctx context.Context, uid, courseId int64) (domain.CourseProgress, error) {
	e, err := s.Enrollment(ctx, uid, courseId)
	if err != nil {
		return domain.CourseProgress{}, err
	}
	outline, err := s.courseSvc.CourseOutline(ctx, courseId)
	if err != nil {
		return domain.CourseProgress{}, err
	}
	ps, err := s.repo.ProgressByLessonIds(ctx, uid, outline.LessonIds())
	if err != nil {
		return domain.CourseProgress{}, err
	}
	done := make(map[int64]bool, len(ps))
	for _, p := range ps {
		done[p.LessonId] = p.Completed()
	}
	moduleCompleted := make(map[int64]int64)
	for _, t := range outline.Tracks {
		for _, m := range t.Modules {
			for _, l := range m.Lessons {
				if done[l.Id] {
					moduleCompleted[m.Id]++
				}
			}
		}
	}
	recent, err := s.repo.RecentCompleted(ctx, uid, e.Id, recentLessonsLimit)
	if err != nil {
		return domain.CourseProgress{}, err
	}
	recent, err = s.fillLessons(ctx, recent)
	if err != nil {
		return domain.CourseProgress{}, err
	}
	return domain.CourseProgress{
		Enrollment:      e,
		Outline:         outline,
		ModuleCompleted: moduleCompleted,
		Recent:          recent,
	}, nil
}

func (s *progressService) fillLessons(ctx context.Context, ps []domain.LessonProgress) ([]domain.LessonProgress, error) {
	lessons, err := s.courseSvc.LessonsByIds(ctx, slice.Map(ps, func(idx int, src domain.LessonProgress) int64 {
		return src.LessonId
	}))
	if err != nil {
		return nil, err
	}
	for i := range ps {
		ps[i].Lesson = lessons[ps[i].LessonId]
	}
	return ps, nil
}

func (s *progressService) ModuleLessons(ctx context.Context, uid, moduleId int64) ([]domain.ModuleLesson, error) {
	ls, err := s.courseSvc.ModuleLessons(ctx, moduleId)
	if err != nil {
		return nil, err
	}
	ps, err := s.LessonProgressByIds(ctx, uid, slice.Map(ls, func(idx int, src course.Lesson) int64 {
		return src.Id
	}))
	if err != nil {
		return nil, err
	}
	return slice.Map(ls, func(idx int, src course.Lesson) domain.ModuleLesson {
		return domain.ModuleLesson{
			Lesson:   src,
			Progress: ps[src.Id],
		}
	}), nil
}

func (s *progressService) Enrollment(ctx context.Context, uid, courseId int64) (domain.Enrollment, error) {
	e, err := s.repo.Enrollment(ctx, uid, courseId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Enrollment{}, ErrNotEnrolled
	}
	return e, err
}

func (s *progressService) LatestCompletedEnrollment(ctx context.Context, uid int64) (domain.Enrollment, error) {
	return s.repo.LatestCompletedEnrollment(ctx, uid)
}

func (s *progressService) RecentCompletedLessons(ctx context.Context, uid int64, limit int) ([]domain.LessonProgress, error) {
	ps, err := s.repo.RecentCompleted(ctx, uid, 0, limit)
	if err != nil {
		return nil, err
	}
	return s.fillLessons(ctx, ps)
}

func (s *progressService) ContinueLearning(ctx context.Context, uid int64) (domain.Enrollment, error) {
	es, err := s.repo.Enrollments(ctx, uid)
	if err != nil {
		return domain.Enrollment{}, err
	}
	for _, e := range es {
		if e.Completed() {
			continue
		}
		filled, err := s.fillEnrollments(ctx, []domain.Enrollment{e})
		if err != nil {
			return domain.Enrollment{}, err
		}
		return filled[0], nil
	}
	return domain.Enrollment{}, nil
}

func (s *progressService) LessonProgressByIds(ctx context.Context, uid int64, lessonIds []int64) (map[int64]domain.LessonProgress, error) {
	ps, err := s.repo.ProgressByLessonIds(ctx, uid, lessonIds)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.LessonProgress, len(ps))
	for _, p := range ps {
		res[p.LessonId] = p
	}
	return res, nil
}

func (s *progressService) CompletedLessonCount(ctx context.Context, uid int64, since int64) (int64, error) {
	return s.repo.CountCompletedSince(ctx, uid, since)
}
