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
	"testing"

	"github.com/ecodeclub/hug/internal/course"
	coursemocks "github.com/ecodeclub/hug/internal/course/mocks"
	"github.com/ecodeclub/hug/internal/gamification"
	gamificationmocks "github.com/ecodeclub/hug/internal/gamification/mocks"
	"github.com/ecodeclub/hug/internal/progress"
	progressmocks "github.com/ecodeclub/hug/internal/progress/mocks"
	"github.com/ecodeclub/hug/internal/quiz/internal/domain"
	"github.com/ecodeclub/hug/internal/quiz/internal/repository"
	repomocks "github.com/ecodeclub/hug/internal/quiz/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func introQuiz() domain.Quiz {
	return domain.Quiz{
		Id:           5,
		LessonId:     1,
		Title:        "Gita Introduction Quiz",
		PassingScore: 70,
		Questions: []domain.Question{
			{Id: "q1", CorrectOption: "b", Explanation: "700"},
			{Id: "q2", CorrectOption: "b", Explanation: "Krishna"},
		},
	}
}

type quizMocks struct {
	repo      *repomocks.MockQuizRepository
	courseSvc *coursemocks.MockService
	progSvc   *progressmocks.MockService
	gameSvc   *gamificationmocks.MockService
}

func TestQuizService_Submit(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m quizMocks)
		answers []domain.Answer

		wantResult domain.SubmitResult
		wantErr    error
	}{
		{
			name: "通过测验发放奖励",
			mock: func(m quizMocks) {
				m.repo.EXPECT().Quiz(gomock.Any(), int64(5)).Return(introQuiz(), nil)
				m.courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1)).
					Return(course.LessonLocation{CourseId: 9}, nil)
				m.progSvc.EXPECT().Enrollment(gomock.Any(), int64(3), int64(9)).
					Return(progress.Enrollment{Id: 11}, nil)
				m.repo.EXPECT().CreateAttempt(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a domain.Attempt) (domain.Attempt, error) {
						assert.Equal(t, int64(11), a.EnrollmentId)
						assert.Equal(t, float64(100), a.Score)
						assert.True(t, a.Passed)
						a.Id, a.AttemptNumber = 21, 2
						return a, nil
					})
				m.gameSvc.EXPECT().Reward(gomock.Any(), int64(3), gamification.Reward{
					Xp:          100,
					Karma:       20,
					Source:      "quiz",
					SourceId:    5,
					Description: "Passed quiz: Gita Introduction Quiz",
				}).Return(gamification.RewardResult{Xp: 100, Karma: 20}, nil)
			},
			answers: []domain.Answer{
				{QuestionId: "q1", SelectedOption: "b"},
				{QuestionId: "q2", SelectedOption: "b"},
			},
			wantResult: domain.SubmitResult{
				Attempt: domain.Attempt{
					Id:            21,
					Uid:           3,
					QuizId:        5,
					EnrollmentId:  11,
					AttemptNumber: 2,
					Answers: []domain.Answer{
						{QuestionId: "q1", SelectedOption: "b"},
						{QuestionId: "q2", SelectedOption: "b"},
					},
					Score:            100,
					Passed:           true,
					TimeTakenSeconds: 30,
				},
				CorrectAnswers: 2,
				TotalQuestions: 2,
				Results: []domain.QuestionResult{
					{QuestionId: "q1", IsCorrect: true, SelectedOption: "b", CorrectOption: "b", Explanation: "700"},
					{QuestionId: "q2", IsCorrect: true, SelectedOption: "b", CorrectOption: "b", Explanation: "Krishna"},
				},
				Rewarded: true,
				Xp:       100,
				Karma:    20,
			},
		},
		{
			name: "没有通过不发奖励",
			mock: func(m quizMocks) {
				m.repo.EXPECT().Quiz(gomock.Any(), int64(5)).Return(introQuiz(), nil)
				m.courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1)).
					Return(course.LessonLocation{CourseId: 9}, nil)
				m.progSvc.EXPECT().Enrollment(gomock.Any(), int64(3), int64(9)).
					Return(progress.Enrollment{Id: 11}, nil)
				m.repo.EXPECT().CreateAttempt(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a domain.Attempt) (domain.Attempt, error) {
						a.Id, a.AttemptNumber = 22, 1
						return a, nil
					})
			},
			answers: []domain.Answer{
				{QuestionId: "q1", SelectedOption: "b"},
				{QuestionId: "q2", SelectedOption: "a"},
			},
			wantResult: domain.SubmitResult{
				Attempt: domain.Attempt{
					Id:            22,
					Uid:           3,
					QuizId:        5,
					EnrollmentId:  11,
					AttemptNumber: 1,
					Answers: []domain.Answer{
						{QuestionId: "q1", SelectedOption: "b"},
						{QuestionId: "q2", SelectedOption: "a"},
					},
					Score:            50,
					TimeTakenSeconds: 30,
				},
				CorrectAnswers: 1,
				TotalQuestions: 2,
				Results: []domain.QuestionResult{
					{QuestionId: "q1", IsCorrect: true, SelectedOption: "b", CorrectOption: "b", Explanation: "700"},
					{QuestionId: "q2", IsCorrect: false, SelectedOption: "a", CorrectOption: "b", Explanation: "Krishna"},
				},
			},
		},
		{
			name: "测验不存在",
			mock: func(m quizMocks) {
				m.repo.EXPECT().Quiz(gomock.Any(), int64(5)).Return(domain.Quiz{}, repository.ErrRecordNotFound)
			},
			wantErr: ErrQuizNotFound,
		},
		{
			name: "没有报名",
			mock: func(m quizMocks) {
				m.repo.EXPECT().Quiz(gomock.Any(), int64(5)).Return(introQuiz(), nil)
				m.courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1)).
					Return(course.LessonLocation{CourseId: 9}, nil)
				m.progSvc.EXPECT().Enrollment(gomock.Any(), int64(3), int64(9)).
					Return(progress.Enrollment{}, progress.ErrNotEnrolled)
			},
			wantErr: ErrNotEnrolled,
		},
		{
			name: "发放奖励失败",
			mock: func(m quizMocks) {
				m.repo.EXPECT().Quiz(gomock.Any(), int64(5)).Return(introQuiz(), nil)
				m.courseSvc.EXPECT().LessonLocation(gomock.Any(), int64(1)).
					Return(course.LessonLocation{CourseId: 9}, nil)
				m.progSvc.EXPECT().Enrollment(gomock.Any(), int64(3), int64(9)).
					Return(progress.Enrollment{Id: 11}, nil)
				m.repo.EXPECT().CreateAttempt(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a domain.Attempt) (domain.Attempt, error) {
						return a, nil
					})
				m.gameSvc.EXPECT().Reward(gomock.Any(), int64(3), gomock.Any()).
					Return(gamification.RewardResult{}, errors.New("mock db error"))
			},
			answers: []domain.Answer{
				{QuestionId: "q1", SelectedOption: "b"},
				{QuestionId: "q2", SelectedOption: "b"},
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := quizMocks{
				repo:      repomocks.NewMockQuizRepository(ctrl),
				courseSvc: coursemocks.NewMockService(ctrl),
				progSvc:   progressmocks.NewMockService(ctrl),
				gameSvc:   gamificationmocks.NewMockService(ctrl),
			}
			tc.mock(m)
			svc := NewService(m.repo, m.courseSvc, m.progSvc, m.gameSvc)
			res, err := svc.Submit(context.Background(), 3, 5, tc.answers, 30)
			if tc.wantErr != nil {
				if errors.Is(tc.wantErr, ErrQuizNotFound) || errors.Is(tc.wantErr, ErrNotEnrolled) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.EqualError(t, err, tc.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, res)
		})
	}
}

func TestQuizService_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockQuizRepository(ctrl)
	courseSvc := coursemocks.NewMockService(ctrl)
	courseSvc.EXPECT().LessonBySlug(gomock.Any(), "lesson-gita-intro").
		Return(course.Lesson{Id: 42}, nil)
	repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, quizzes []domain.Quiz) (int64, error) {
			require.Len(t, quizzes, 1)
			assert.Equal(t, int64(42), quizzes[0].LessonId)
			assert.Equal(t, 70, quizzes[0].PassingScore)
			assert.Len(t, quizzes[0].Questions, 2)
			return 1, nil
		})
	svc := NewService(repo, courseSvc, nil, nil)
	cnt, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}
