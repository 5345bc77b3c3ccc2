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

package web

import (
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/user"
)

type Dashboard struct {
	Metrics Metrics `json:"metrics"`
	// ContinueLearning 没有进行中的课程时为 null
	ContinueLearning *ContinueLearning `json:"continue_learning"`
	RecentLessons    []RecentLesson    `json:"recent_lessons"`
	RecentBadges     []RecentBadge     `json:"recent_badges"`
	TodayActivity    TodayActivity     `json:"today_activity"`
	FeaturedCourses  []FeaturedCourse  `json:"featured_courses"`
}

type Metrics struct {
	TotalXp       int64 `json:"total_xp"`
	TotalKarma    int64 `json:"total_karma"`
	WisdomLevel   int64 `json:"wisdom_level"`
	CurrentStreak int64 `json:"current_streak"`
	LongestStreak int64 `json:"longest_streak"`
}

type ContinueLearning struct {
	EnrollmentId         int64   `json:"enrollment_id"`
	CourseId             int64   `json:"course_id"`
	CourseName           string  `json:"course_name"`
	ThumbnailUrl         string  `json:"thumbnail_url"`
	CompletionPercentage float64 `json:"completion_percentage"`
	CurrentLessonId      int64   `json:"current_lesson_id"`
}

type RecentLesson struct {
	LessonId    int64  `json:"lesson_id"`
	LessonName  string `json:"lesson_name"`
	CompletedAt int64  `json:"completed_at"`
}

type RecentBadge struct {
	Slug     string `json:"badge_slug"`
	Name     string `json:"badge_name"`
	IconUrl  string `json:"badge_icon_url"`
	EarnedAt int64  `json:"earned_at"`
}

type TodayActivity struct {
	LessonsCompleted int64 `json:"lessons_completed"`
	TimeSpentMinutes int64 `json:"time_spent_minutes"`
	XpEarned         int64 `json:"xp_earned"`
}

type FeaturedCourse struct {
	CourseId         int64  `json:"course_id"`
	CourseName       string `json:"course_name"`
	ShortDescription string `json:"short_description"`
	ThumbnailUrl     string `json:"thumbnail_url"`
	DifficultyLevel  string `json:"difficulty_level"`
}

type ProfileReq struct {
	Preferences         map[string]string `json:"preferences"`
	OnboardingCompleted *bool             `json:"onboarding_completed"`
}

type LearningProfile struct {
	LearningProfileId   int64             `json:"learning_profile_id"`
	Uid                 int64             `json:"user_id"`
	DisplayName         string            `json:"display_name"`
	Preferences         map[string]string `json:"preferences"`
	OnboardingCompleted bool              `json:"onboarding_completed"`
	Metrics             Metrics           `json:"metrics"`
	Ctime               int64             `json:"created_at"`
	IsNew               bool              `json:"is_new"`
}

func newLearningProfile(u user.User, m gamification.Metrics) LearningProfile {
	prefs := u.Preferences
	if prefs == nil {
		prefs = map[string]string{}
	}
	return LearningProfile{
		LearningProfileId:   m.Uid,
		Uid:                 u.Id,
		DisplayName:         u.Name,
		Preferences:         prefs,
		OnboardingCompleted: u.OnboardingCompleted || m.TotalLessonsCompleted > 0,
		Metrics: Metrics{
			TotalXp:       m.TotalXp,
			TotalKarma:    m.TotalKarma,
			WisdomLevel:   m.WisdomLevel,
			CurrentStreak: m.CurrentStreak,
			LongestStreak: m.LongestStreak,
		},
		Ctime: m.Ctime,
	}
}
