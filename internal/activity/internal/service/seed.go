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

import "github.com/ecodeclub/hug/internal/activity/internal/domain"

type seedActivity struct {
	lessonSlug string
	activity   domain.Activity
}

func defaultActivities() []seedActivity {
	return []seedActivity{
		{
			lessonSlug: "lesson-gita-intro",
			activity: domain.Activity{
				Slug:         "activity-gita-intro-reflection",
				ActivityType: domain.TypeReflection,
				Content: domain.Content{
					Title:        "Your first step",
					Prompt:       "What brought you to study the Bhagavad Gita, and what do you hope to learn?",
					Instructions: "Write a few sentences in your own words.",
					MinWords:     30,
				},
				DisplayOrder: 1,
			},
		},
		{
			lessonSlug: "lesson-dharma-basics",
			activity: domain.Activity{
				Slug:         "activity-dharma-reflection",
				ActivityType: domain.TypeReflection,
				Content: domain.Content{
					Title:        "Reflecting on Dharma",
					Prompt:       "Describe a situation where you had to choose between what was easy and what was right.",
					Instructions: "Reflect on how the idea of svadharma applies to that choice.",
					MinWords:     50,
				},
				IsRequired:   true,
				DisplayOrder: 1,
			},
		},
		{
			lessonSlug: "lesson-dharma-basics",
			activity: domain.Activity{
				Slug:         "activity-dharma-practice",
				ActivityType: domain.TypePractice,
				Content: domain.Content{
					Title:        "One dutiful act",
					Prompt:       "Perform one duty today without expecting any reward and note how it felt.",
					Instructions: "Share a short note after completing the practice.",
				},
				DisplayOrder: 2,
			},
		},
	}
}
