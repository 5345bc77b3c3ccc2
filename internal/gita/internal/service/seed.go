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
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/gita/internal/domain"
)

const shlokaXp = 2

func defaultBadges() []gamification.Badge {
	levels := domain.Levels()
	res := make([]gamification.Badge, 0, len(levels)+1)
	for _, l := range levels {
		res = append(res, gamification.Badge{
			Slug:        l.BadgeSlug,
			Name:        l.BadgeName,
			Description: l.BadgeDescription(),
			Category:    "achievement",
			XpReward:    l.BadgeXp,
		})
	}
	return append(res, gamification.Badge{
		Slug:        domain.BadgeMaster,
		Name:        "Gita Jeevan Acharya",
		Description: "Master of Bhagavad Gita - Completed all 18 chapters and 700 shlokas",
		Category:    "achievement",
		XpReward:    500,
		KarmaReward: 100,
	})
}

// defaultChapters 18 章的元数据，目前只有第一章的前两颂有内容
func defaultChapters() []domain.Chapter {
	chapters := []domain.Chapter{
		{Number: 1, Name: "Arjuna Vishada Yoga", NameSanskrit: "अर्जुनविषादयोगः", Description: "The Yoga of Arjuna's Dejection", TotalShlokas: 47, Level: 1},
		// 第二章的后半部分 39-72 颂在第二级，这里按照第一级统计
		{Number: 2, Name: "Sankhya Yoga", NameSanskrit: "साङ्ख्ययोगः", Description: "The Yoga of Knowledge", TotalShlokas: 72, Level: 1},
		{Number: 3, Name: "Karma Yoga", NameSanskrit: "कर्मयोगः", Description: "The Yoga of Action", TotalShlokas: 43, Level: 2},
		{Number: 4, Name: "Jnana-Karma Sanyasa Yoga", NameSanskrit: "ज्ञानकर्मसन्यासयोगः", Description: "The Yoga of Knowledge and Renunciation of Action", TotalShlokas: 42, Level: 2},
		{Number: 5, Name: "Karma Sanyasa Yoga", NameSanskrit: "कर्मसन्यासयोगः", Description: "The Yoga of Renunciation of Action", TotalShlokas: 29, Level: 2},
		{Number: 6, Name: "Dhyana Yoga", NameSanskrit: "ध्यानयोगः", Description: "The Yoga of Meditation", TotalShlokas: 47, Level: 3},
		{Number: 7, Name: "Jnana-Vijnana Yoga", NameSanskrit: "ज्ञानविज्ञानयोगः", Description: "The Yoga of Knowledge and Wisdom", TotalShlokas: 30, Level: 3},
		{Number: 8, Name: "Akshara Brahma Yoga", NameSanskrit: "अक्षरब्रह्मयोगः", Description: "The Yoga of the Imperishable Brahman", TotalShlokas: 28, Level: 3},
		{Number: 9, Name: "Raja Vidya Raja Guhya Yoga", NameSanskrit: "राजविद्याराजगुह्ययोगः", Description: "The Yoga of Royal Knowledge and Royal Secret", TotalShlokas: 34, Level: 3},
		{Number: 10, Name: "Vibhuti Yoga", NameSanskrit: "विभूतियोगः", Description: "The Yoga of Divine Glories", TotalShlokas: 42, Level: 4},
		{Number: 11, Name: "Vishvarupa Darshana Yoga", NameSanskrit: "विश्वरूपदर्शनयोगः", Description: "The Yoga of the Vision of the Universal Form", TotalShlokas: 55, Level: 4},
		{Number: 12, Name: "Bhakti Yoga", NameSanskrit: "भक्तियोगः", Description: "The Yoga of Devotion", TotalShlokas: 20, Level: 3},
		{Number: 13, Name: "Kshetra-Kshetragya Yoga", NameSanskrit: "क्षेत्रक्षेत्रज्ञयोगः", Description: "The Yoga of the Field and the Knower of the Field", TotalShlokas: 34, Level: 4},
		{Number: 14, Name: "Gunatraya Vibhaga Yoga", NameSanskrit: "गुणत्रयविभागयोगः", Description: "The Yoga of the Division of the Three Gunas", TotalShlokas: 27, Level: 4},
		{Number: 15, Name: "Purushottama Yoga", NameSanskrit: "पुरुषोत्तमयोगः", Description: "The Yoga of the Supreme Person", TotalShlokas: 20, Level: 4},
		{Number: 16, Name: "Daivasura Sampad Yoga", NameSanskrit: "दैवासुरसम्पद्विभागयोगः", Description: "The Yoga of the Division between the Divine and Demoniacal", TotalShlokas: 24, Level: 5},
		{Number: 17, Name: "Shraddhatraya Vibhaga Yoga", NameSanskrit: "श्रद्धात्रयविभागयोगः", Description: "The Yoga of the Threefold Division of Faith", TotalShlokas: 28, Level: 5},
		{Number: 18, Name: "Moksha Sanyasa Yoga", NameSanskrit: "मोक्षसन्यासयोगः", Description: "The Yoga of Liberation and Renunciation", TotalShlokas: 78, Level: 5},
	}
	for i := range chapters {
		chapters[i].DisplayOrder = chapters[i].Number
	}
	chapters[0].Shlokas = []domain.Shloka{
		{
			Number:          1,
			SanskritText:    "धृतराष्ट्र उवाच | धर्मक्षेत्रे कुरुक्षेत्रे समवेता युयुत्सवः | मामकाः पाण्डवाश्चैव किमकुर्वत सञ्जय || 1-1 ||",
			Transliteration: "dhṛtarāṣṭra uvāca | dharmakṣetre kurukṣetre samavetā yuyutsavaḥ | māmakāḥ pāṇḍavāścaiva kimakurvata sañjaya || 1-1 ||",
			XpReward:        shlokaXp,
			DisplayOrder:    1,
			Translations: []domain.Translation{
				{
					Language:     "en",
					Meaning:      "King Dhritarashtra said: O Sanjaya, what did my sons and the sons of Pandu do when they assembled at the holy place of Kurukshetra, eager for battle?",
					Explanation:  "This is the opening verse of the Bhagavad Gita. Dhritarashtra, the blind king, asks his minister Sanjaya about the events on the battlefield of Kurukshetra.",
					WhyItMatters: "This verse sets the context for the entire Gita - a battlefield where the greatest spiritual teaching will be delivered.",
				},
				{
					Language:     "hi",
					Meaning:      "धृतराष्ट्र ने कहा: हे संजय, मेरे पुत्रों और पाण्डवों ने क्या किया जब वे युद्ध के लिए उत्सुक होकर धर्मक्षेत्र कुरुक्षेत्र में एकत्र हुए?",
					Explanation:  "यह भगवद गीता का प्रारंभिक श्लोक है। अंधे राजा धृतराष्ट्र अपने मंत्री संजय से कुरुक्षेत्र के युद्धक्षेत्र की घटनाओं के बारे में पूछते हैं।",
					WhyItMatters: "यह श्लोक पूरी गीता के संदर्भ को स्थापित करता है - एक युद्धक्षेत्र जहाँ सबसे बड़ी आध्यात्मिक शिक्षा दी जाएगी।",
				},
			},
			Audios: []domain.Audio{
				{Language: "en", AudioType: domain.AudioSanskrit, Url: "/audio/gita/en/1-1-sanskrit.mp3", DurationSeconds: 18},
			},
		},
		{
			Number:          2,
			SanskritText:    "सञ्जय उवाच | दृष्ट्वा तु पाण्डवानीकं व्यूढं दुर्योधनस्तदा | आचार्यमुपसङ्गम्य राजा वचनमब्रवीत् || 1-2 ||",
			Transliteration: "sañjaya uvāca | dṛṣṭvā tu pāṇḍavānīkaṃ vyūḍhaṃ duryodhanastadā | ācāryamupasaṅgamya rājā vacanamabravīt || 1-2 ||",
			XpReward:        shlokaXp,
			DisplayOrder:    2,
			Translations: []domain.Translation{
				{
					Language:     "en",
					Meaning:      "Sanjaya said: Having seen the army of the Pandavas drawn up in battle order, King Duryodhana approached his teacher Drona and spoke these words.",
					Explanation:  "Sanjaya begins his narration. Duryodhana, uneasy at the sight of the Pandava army, goes to his teacher instead of his commander.",
					WhyItMatters: "Anxiety shows itself before any battle begins. Seeing our own fear clearly is the first step of the inner journey.",
				},
				{
					Language:     "hi",
					Meaning:      "संजय ने कहा: उस समय पाण्डवों की सेना को व्यूह रचना में खड़ी देखकर राजा दुर्योधन अपने आचार्य द्रोण के पास जाकर यह वचन बोला।",
					Explanation:  "संजय वर्णन शुरू करते हैं। पाण्डवों की सेना देखकर बेचैन दुर्योधन सेनापति के बजाय अपने गुरु के पास जाता है।",
					WhyItMatters: "हर युद्ध से पहले भय प्रकट होता है। अपने भय को स्पष्ट देखना आंतरिक यात्रा का पहला कदम है।",
				},
			},
		},
	}
	return chapters
}
