package seeder

import "github.com/okian/harf/internal/domain/model"

// The built-in practice catalogs. Words are grouped by word family in their
// fixed practice order; sentences and stories carry the Arabic companion text
// shown alongside the English.

func defaultWords() []model.CVCWord {
	return []model.CVCWord{
		// -at family
		{Word: "CAT", Meaning: "قطة", Category: "animals", Difficulty: 1, SortOrder: 1, Emoji: "🐱", WordFamily: "at", VowelSound: "a"},
		{Word: "BAT", Meaning: "خفاش", Category: "animals", Difficulty: 1, SortOrder: 2, Emoji: "🦇", WordFamily: "at", VowelSound: "a"},
		{Word: "RAT", Meaning: "فأر", Category: "animals", Difficulty: 1, SortOrder: 3, Emoji: "🐀", WordFamily: "at", VowelSound: "a"},
		{Word: "MAT", Meaning: "سجادة", Category: "objects", Difficulty: 1, SortOrder: 4, Emoji: "🧘", WordFamily: "at", VowelSound: "a"},
		{Word: "HAT", Meaning: "قبعة", Category: "clothes", Difficulty: 1, SortOrder: 5, Emoji: "🎩", WordFamily: "at", VowelSound: "a"},
		{Word: "FAT", Meaning: "سمين", Category: "adjectives", Difficulty: 1, SortOrder: 6, Emoji: "🐘", WordFamily: "at", VowelSound: "a"},

		// -og family
		{Word: "DOG", Meaning: "كلب", Category: "animals", Difficulty: 1, SortOrder: 7, Emoji: "🐕", WordFamily: "og", VowelSound: "o"},
		{Word: "LOG", Meaning: "جذع شجرة", Category: "nature", Difficulty: 2, SortOrder: 8, Emoji: "🪵", WordFamily: "og", VowelSound: "o"},
		{Word: "FOG", Meaning: "ضباب", Category: "nature", Difficulty: 2, SortOrder: 9, Emoji: "🌫️", WordFamily: "og", VowelSound: "o"},
		{Word: "HOG", Meaning: "خنزير بري", Category: "animals", Difficulty: 2, SortOrder: 10, Emoji: "🐗", WordFamily: "og", VowelSound: "o"},

		// -ig family
		{Word: "BIG", Meaning: "كبير", Category: "adjectives", Difficulty: 1, SortOrder: 11, Emoji: "📏", WordFamily: "ig", VowelSound: "i"},
		{Word: "PIG", Meaning: "خنزير", Category: "animals", Difficulty: 1, SortOrder: 12, Emoji: "🐷", WordFamily: "ig", VowelSound: "i"},
		{Word: "DIG", Meaning: "يحفر", Category: "verbs", Difficulty: 2, SortOrder: 13, Emoji: "⛏️", WordFamily: "ig", VowelSound: "i"},
		{Word: "WIG", Meaning: "باروكة", Category: "objects", Difficulty: 2, SortOrder: 14, Emoji: "💇", WordFamily: "ig", VowelSound: "i"},

		// -un family
		{Word: "SUN", Meaning: "شمس", Category: "nature", Difficulty: 1, SortOrder: 15, Emoji: "☀️", WordFamily: "un", VowelSound: "u"},
		{Word: "RUN", Meaning: "يركض", Category: "verbs", Difficulty: 1, SortOrder: 16, Emoji: "🏃", WordFamily: "un", VowelSound: "u"},
		{Word: "BUN", Meaning: "كعكة", Category: "food", Difficulty: 1, SortOrder: 17, Emoji: "🥐", WordFamily: "un", VowelSound: "u"},
		{Word: "FUN", Meaning: "مرح", Category: "adjectives", Difficulty: 1, SortOrder: 18, Emoji: "🎉", WordFamily: "un", VowelSound: "u"},

		// -ed family
		{Word: "BED", Meaning: "سرير", Category: "objects", Difficulty: 1, SortOrder: 19, Emoji: "🛏️", WordFamily: "ed", VowelSound: "e"},
		{Word: "RED", Meaning: "أحمر", Category: "colors", Difficulty: 1, SortOrder: 20, Emoji: "❤️", WordFamily: "ed", VowelSound: "e"},
		{Word: "FED", Meaning: "أطعم", Category: "verbs", Difficulty: 2, SortOrder: 21, Emoji: "🍽️", WordFamily: "ed", VowelSound: "e"},

		// -en family
		{Word: "PEN", Meaning: "قلم", Category: "objects", Difficulty: 1, SortOrder: 22, Emoji: "🖊️", WordFamily: "en", VowelSound: "e"},
		{Word: "TEN", Meaning: "عشرة", Category: "numbers", Difficulty: 1, SortOrder: 23, Emoji: "🔟", WordFamily: "en", VowelSound: "e"},
		{Word: "HEN", Meaning: "دجاجة", Category: "animals", Difficulty: 1, SortOrder: 24, Emoji: "🐓", WordFamily: "en", VowelSound: "e"},

		// -op family
		{Word: "TOP", Meaning: "قمة", Category: "objects", Difficulty: 2, SortOrder: 25, Emoji: "🔝", WordFamily: "op", VowelSound: "o"},
		{Word: "HOP", Meaning: "يقفز", Category: "verbs", Difficulty: 2, SortOrder: 26, Emoji: "🦘", WordFamily: "op", VowelSound: "o"},
		{Word: "MOP", Meaning: "ممسحة", Category: "objects", Difficulty: 2, SortOrder: 27, Emoji: "🧹", WordFamily: "op", VowelSound: "o"},

		// -ot family
		{Word: "POT", Meaning: "وعاء", Category: "objects", Difficulty: 2, SortOrder: 28, Emoji: "🍲", WordFamily: "ot", VowelSound: "o"},
		{Word: "HOT", Meaning: "حار", Category: "adjectives", Difficulty: 1, SortOrder: 29, Emoji: "🔥", WordFamily: "ot", VowelSound: "o"},
		{Word: "DOT", Meaning: "نقطة", Category: "objects", Difficulty: 2, SortOrder: 30, Emoji: "⚫", WordFamily: "ot", VowelSound: "o"},

		// Mixed families
		{Word: "BUS", Meaning: "حافلة", Category: "vehicles", Difficulty: 1, SortOrder: 31, Emoji: "🚌", WordFamily: "us", VowelSound: "u"},
		{Word: "CUP", Meaning: "كوب", Category: "objects", Difficulty: 1, SortOrder: 32, Emoji: "☕", WordFamily: "up", VowelSound: "u"},
		{Word: "NUT", Meaning: "جوزة", Category: "food", Difficulty: 2, SortOrder: 33, Emoji: "🥜", WordFamily: "ut", VowelSound: "u"},
		{Word: "BAG", Meaning: "حقيبة", Category: "objects", Difficulty: 1, SortOrder: 34, Emoji: "🎒", WordFamily: "ag", VowelSound: "a"},
		{Word: "SIT", Meaning: "يجلس", Category: "verbs", Difficulty: 1, SortOrder: 35, Emoji: "🪑", WordFamily: "it", VowelSound: "i"},
	}
}

func defaultSentences() []model.CVCSentence {
	return []model.CVCSentence{
		{Sentence: "The cat sat on the mat.", Translation: "القطة جلست على السجادة.", Difficulty: 1, TimeLimit: 30, SortOrder: 1, Emoji: "🐱", Category: "cvc"},
		{Sentence: "A big dog ran to the log.", Translation: "كلب كبير ركض إلى الجذع.", Difficulty: 1, TimeLimit: 30, SortOrder: 2, Emoji: "🐕", Category: "cvc"},
		{Sentence: "I see a red pen on the bed.", Translation: "أرى قلماً أحمراً على السرير.", Difficulty: 2, TimeLimit: 35, SortOrder: 3, Emoji: "🖊️", Category: "cvc"},
		{Sentence: "The sun is hot.", Translation: "الشمس حارة.", Difficulty: 1, TimeLimit: 20, SortOrder: 4, Emoji: "☀️", Category: "cvc"},
		{Sentence: "A rat hid in a pot.", Translation: "فأر اختبأ في وعاء.", Difficulty: 2, TimeLimit: 25, SortOrder: 5, Emoji: "🐀", Category: "cvc"},
		{Sentence: "Put on your hat and get in the bus.", Translation: "ضع قبعتك واركب الحافلة.", Difficulty: 3, TimeLimit: 40, SortOrder: 6, Emoji: "🎩", Category: "cvc"},
		{Sentence: "The pig is big.", Translation: "الخنزير كبير.", Difficulty: 1, TimeLimit: 20, SortOrder: 7, Emoji: "🐷", Category: "cvc"},
		{Sentence: "I can see fog on the top.", Translation: "أستطيع رؤية الضباب على القمة.", Difficulty: 3, TimeLimit: 35, SortOrder: 8, Emoji: "🌫️", Category: "cvc"},
		{Sentence: "The hen is in the pen.", Translation: "الدجاجة في الحظيرة.", Difficulty: 2, TimeLimit: 25, SortOrder: 9, Emoji: "🐓", Category: "cvc"},
		{Sentence: "I run in the sun for fun.", Translation: "أركض تحت الشمس للمرح.", Difficulty: 2, TimeLimit: 30, SortOrder: 10, Emoji: "🏃", Category: "cvc"},
	}
}

func defaultStories() []model.CVCStory {
	return []model.CVCStory{
		{
			Title: "🐱 The Fat Cat",
			Content: `Once upon a time, there was a [fat] 🐱 cat.
The cat sat on a [mat].
The cat had a red [hat] 🎩.
The cat saw a [rat] 🐭 near the hat.
The rat ran fast! The cat sat back on the mat.`,
			Explanation: `كان يا ما كان قطة سمينة 🐱
جلست القطة على السجادة
كان لدى القطة قبعة حمراء 🎩
رأت القطة فأراً 🐭 بالقرب من القبعة
هرب الفأر بسرعة! فجلست القطة مرة أخرى على السجادة`,
			ImageURL: "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?w=400",
			Quiz: []model.QuizQuestion{
				{
					Question:   "Where did the cat sit?",
					QuestionAr: "أين جلست القطة؟",
					Options:    []string{"On a mat", "On a bed", "On a chair", "On a box"},
					Correct:    0,
					FeedbackAr: "رائع! القطة جلست على السجادة",
					FeedbackEn: "Great! The cat sat on a mat",
				},
				{
					Question:   "What did the cat wear?",
					QuestionAr: "ماذا ارتدت القطة؟",
					Options:    []string{"A coat", "A hat", "A bag", "A scarf"},
					Correct:    1,
					FeedbackAr: "ممتاز! القطة كانت ترتدي قبعة",
					FeedbackEn: "Excellent! The cat wore a hat",
				},
			},
			Difficulty: 1,
			SortOrder:  1,
		},
		{
			Title: "☀️ A Fun Day",
			Content: `The [sun] ☀️ is up.
Tom can [run] 🏃 and have fun.
He runs to the [bus] 🚌 stop.
Tom has a [bun] 🥐 in his bag.
Tom sits in the bus and eats the bun. Yum! 😋`,
			Explanation: `الشمس مشرقة ☀️
توم يستطيع الجري 🏃 والاستمتاع
يركض إلى محطة الحافلة 🚌
لدى توم كعكة 🥐 في حقيبته
يجلس توم في الحافلة ويأكل الكعكة. لذيذة! 😋`,
			ImageURL: "https://images.unsplash.com/photo-1544776193-352d25ca82cd?w=400",
			Quiz: []model.QuizQuestion{
				{
					Question:   "What is up in the sky?",
					QuestionAr: "ماذا يوجد في السماء؟",
					Options:    []string{"The moon", "The sun", "A cloud", "A star"},
					Correct:    1,
					FeedbackAr: "صحيح! الشمس مشرقة",
					FeedbackEn: "Correct! The sun is up",
				},
			},
			Difficulty: 1,
			SortOrder:  2,
		},
		{
			Title: "🐶 The Little Dog",
			Content: `There is a little [dog] 🐶 named Max.
Max can [dig] ⛏️ in the mud.
Max dug a [big] hole.
Max found a [stick] 🪵 in the hole.
Max is happy! He wags his tail. 🐕`,
			Explanation: `يوجد كلب صغير 🐶 اسمه ماكس
ماكس يستطيع الحفر ⛏️ في الطين
حفر ماكس حفرة كبيرة
وجد ماكس عصا 🪵 في الحفرة
ماكس سعيد! يهز ذيله 🐕`,
			ImageURL:   "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=400",
			Quiz:       []model.QuizQuestion{},
			Difficulty: 1,
			SortOrder:  3,
		},
	}
}
