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

package domain

import (
	"fmt"
	"time"
)

const (
	TypeNextCourse = "next_course"
	TypeWeakTopic  = "weak_topic"
	TypeGroup      = "group"
	TypeSeva       = "seva"
	TypeBadge      = "badge"

	NextCoursePriority = 90
	StreakPriority     = 70
	NextCourseTTL      = 7 * 24 * time.Hour
	// StreakTTL 连续学习天数每天都会变化，过期之后由定时任务清理
	StreakTTL = 24 * time.Hour
	// StreakGoal 连续学习达到这个天数之后不再提醒
	StreakGoal = 7
	// ListLimit 每次最多展示的推荐数量
	ListLimit = 5
)

type Recommendation struct {
	Id       int64
	Uid      int64
	Type     string
	TargetId int64
	Priority int
	Reason   string
	Context  map[string]int64
	Shown    bool
	ActedOn  bool
	// ExpiresAt 为 0 表示永不过期
	ExpiresAt int64
	Ctime     int64
}

func (r Recommendation) Title() string {
	switch r.Type {
	case TypeNextCourse:
		return "Try This Course Next"
	case TypeWeakTopic:
		return "Review This Topic"
	case TypeGroup:
		return "Join a Learning Group"
	case TypeSeva:
		return "Apply Your Learning"
	case TypeBadge:
		return "Earn Your Next Badge"
	default:
		return "Recommendation"
	}
}

// Description 优先使用生成推荐时写下的原因
func (r Recommendation) Description() string {
	if r.Reason != "" {
		return r.Reason
	}
	switch r.Type {
	case TypeNextCourse:
		return "Based on your progress, this course is perfect for you"
	case TypeWeakTopic:
		return "Strengthen your understanding"
	case TypeGroup:
		return "Connect with fellow learners"
	case TypeSeva:
		return "Put your knowledge into action"
	case TypeBadge:
		return "You're close to earning this achievement"
	default:
		return ""
	}
}

func (r Recommendation) ActionText() string {
	switch r.Type {
	case TypeNextCourse:
		return "Start Course"
	case TypeWeakTopic:
		return "Review Now"
	case TypeGroup:
		return "Join Group"
	case TypeSeva:
		return "Explore Opportunities"
	case TypeBadge:
		return "View Badge"
	default:
		return "View"
	}
}

func (r Recommendation) ActionUrl() string {
	if r.TargetId == 0 {
		return "/"
	}
	switch r.Type {
	case TypeNextCourse:
		return fmt.Sprintf("/courses/%d", r.TargetId)
	case TypeWeakTopic:
		return fmt.Sprintf("/lessons/%d", r.TargetId)
	case TypeGroup:
		return fmt.Sprintf("/groups/%d", r.TargetId)
	case TypeSeva:
		return "/seva"
	case TypeBadge:
		return fmt.Sprintf("/badges/%d", r.TargetId)
	default:
		return "/"
	}
}

func NewNextCourse(uid, completedCourseId int64, completedCourseName string, nextCourseId int64, now time.Time) Recommendation {
	return Recommendation{
		Uid:       uid,
		Type:      TypeNextCourse,
		TargetId:  nextCourseId,
		Priority:  NextCoursePriority,
		Reason:    fmt.Sprintf("You completed %s. Ready for the next level?", completedCourseName),
		Context:   map[string]int64{"completed_course_id": completedCourseId},
		ExpiresAt: now.Add(NextCourseTTL).UnixMilli(),
	}
}

// NewStreak 连续学习 1 到 6 天的时候鼓励用户坚持到 7 天
func NewStreak(uid, streak int64, now time.Time) (Recommendation, bool) {
	if streak <= 0 || streak >= StreakGoal {
		return Recommendation{}, false
	}
	return Recommendation{
		Uid:       uid,
		Type:      TypeBadge,
		Priority:  StreakPriority,
		Reason:    fmt.Sprintf("You're on a %d day streak! Keep going to reach %d days.", streak, StreakGoal),
		Context:   map[string]int64{"current_streak": streak},
		ExpiresAt: now.Add(StreakTTL).UnixMilli(),
	}, true
}
