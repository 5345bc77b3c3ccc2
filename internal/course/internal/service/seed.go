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

import "github.com/ecodeclub/hug/internal/course/internal/domain"

const GitaCourseSlug = "bhagavad-gita-life-leadership"

// defaultCatalog 初始课程数据
func defaultCatalog() []domain.School {
	return []domain.School{
		{
			Name:         "Shruti & Smriti Studies",
			Slug:         "school-shruti-smriti",
			Description:  "Study Vedas, Upanishads, Bhagavad Gita, Itihasas, Puranas",
			DisplayOrder: 1,
			Courses: []domain.Course{
				gitaCourse(),
				{
					Name:             "Vedas - Foundation",
					Slug:             "vedas-foundation",
					ShortDescription: "Introduction to the four Vedas and their significance",
					Description:      "Explore the foundational texts of Hindu philosophy: Rigveda, Yajurveda, Samaveda, and Atharvaveda.",
					DurationDays:     21,
					DifficultyLevel:  domain.LevelBeginner,
					TotalLessons:     30,
					EstimatedHours:   10,
					DisplayOrder:     2,
				},
				{
					Name:             "Upanishads - Deeper Study",
					Slug:             "upanishads-deeper-study",
					ShortDescription: "The principal Upanishads and the nature of Atman and Brahman",
					Description:      "A guided reading of the principal Upanishads for learners who completed the foundation courses.",
					DurationDays:     30,
					DifficultyLevel:  domain.LevelIntermediate,
					TotalLessons:     36,
					EstimatedHours:   14,
					DisplayOrder:     3,
				},
			},
		},
		{
			Name:         "Applied Dharma",
			Slug:         "school-applied-dharma",
			Description:  "Karma, Bhakti, Jnana Yoga, Leadership, Ethics, Decision Making",
			DisplayOrder: 2,
		},
		{
			Name:         "Hindu Civilization & Thinkers",
			Slug:         "school-civilization",
			Description:  "Ancient Gurus, Bhakti Movement, Freedom Fighters, Modern Thinkers",
			DisplayOrder: 3,
		},
		{
			Name:         "Sadhana & Lifestyle",
			Slug:         "school-sadhana",
			Description:  "Meditation, Yoga Philosophy, Sanskrit Basics, Hindu Rituals",
			DisplayOrder: 4,
		},
	}
}

func gitaCourse() domain.Course {
	return domain.Course{
		Name:             "Bhagavad Gita - Life & Leadership",
		Slug:             GitaCourseSlug,
		ShortDescription: "Learn practical Dharma and decision-making from the Bhagavad Gita",
		Description:      "A comprehensive course on applying Bhagavad Gita teachings to modern life challenges, leadership, and ethical decision-making.",
		DurationDays:     30,
		DifficultyLevel:  domain.LevelBeginner,
		TotalLessons:     45,
		EstimatedHours:   15.5,
		IsFeatured:       true,
		DisplayOrder:     1,
		Tracks: []domain.Track{
			{
				Name:         "Beginner Track - Foundation",
				Level:        domain.LevelBeginner,
				Description:  "Understand context, core ideas, and basic application",
				DisplayOrder: 1,
				Modules: []domain.Module{
					{
						Name:         "Kurukshetra Context & Characters",
						Description:  "Understand the historical and spiritual context of Bhagavad Gita",
						DisplayOrder: 1,
						Lessons: []domain.Lesson{
							{
								Name:            "Introduction to Bhagavad Gita",
								Slug:            "lesson-gita-intro",
								LessonType:      "mixed",
								DurationMinutes: 5,
								HasQuiz:         true,
								DisplayOrder:    1,
								Slides: []domain.Slide{
									{
										Type:            "text",
										Title:           "Welcome to Bhagavad Gita",
										Body:            "The Bhagavad Gita is a 700-verse Hindu scripture that is part of the epic Mahabharata.",
										DurationSeconds: 90,
									},
									{
										Type:            "text",
										Title:           "Historical Context",
										Body:            "The Gita is set in a dialogue between Pandava prince Arjuna and his guide and charioteer Krishna.",
										DurationSeconds: 90,
									},
									{
										Type:            "text",
										Title:           "Core Message",
										Body:            "Krishna counsels Arjuna to fulfill his duty as a warrior and establish Dharma.",
										DurationSeconds: 90,
									},
								},
							},
						},
					},
					{
						Name:         "What is Dharma?",
						Description:  "Core concept of Dharma and its application",
						DisplayOrder: 2,
						Lessons: []domain.Lesson{
							{
								Name:            "Understanding Dharma",
								Slug:            "lesson-dharma-basics",
								LessonType:      "text",
								DurationMinutes: 4,
								HasQuiz:         true,
								HasReflection:   true,
								DisplayOrder:    1,
								Slides: []domain.Slide{
									{
										Type:            "text",
										Title:           "What is Dharma?",
										Body:            "Dharma refers to righteousness, duty, law, and the path of morality.",
										DurationSeconds: 90,
									},
									{
										Type:            "text",
										Title:           "Four Types of Dharma",
										Body:            "Rita, Varna Dharma, Ashrama Dharma and Svadharma.",
										DurationSeconds: 120,
									},
								},
							},
						},
					},
				},
			},
			{
				Name:         "Intermediate Track - Application",
				Level:        domain.LevelIntermediate,
				Description:  "Apply Gita teachings to real-life scenarios",
				DisplayOrder: 2,
			},
			{
				Name:         "Advanced Track - Mastery & Seva",
				Level:        domain.LevelAdvanced,
				Description:  "Deep insights, teaching others, living Gita through Seva",
				DisplayOrder: 3,
			},
		},
	}
}
