package exam

import "github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"

var englishGrade9Midterm1 = []MockExam{
	{
		ID:     "ta9-gk1-de1-mcq",
		Title:  "Đề 1 (Global Success) - Trắc nghiệm & Đọc hiểu",
		Source: "Đề thi giữa học kì 1 - Global Success",
		Type:   TypeMCQ,
		Questions: []model.PracticeQuestion{
			{Subject: SubjectEnglish, Topic: "Phát âm", Question: "Mark the letter A, B, C or D to indicate the word whose underlined part is pronounced differently from the others: **pottery**", Options: []string{"p**o**ttery", "c**o**ntrol", "f**o**ld", "l**o**cal"}, CorrectAnswer: "p**o**ttery", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Phát âm", Question: "Mark the letter A, B, C or D to indicate the word whose underlined part is pronounced differently from the others: **handicrafts**", Options: []string{"handicraft**s**", "collection**s**", "artisan**s**", "skill**s**"}, CorrectAnswer: "handicraft**s**", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Trọng âm", Question: "Mark the letter A, B, C or D to indicate the word that differs from the other three in the position of primary stress: **suburb**", Options: []string{"suburb", "delight", "helpline", "workshop"}, CorrectAnswer: "delight", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Trọng âm", Question: "Mark the letter A, B, C or D to indicate the word that differs from the other three in the position of primary stress: **handicraft**", Options: []string{"handicraft", "collector", "department", "opinion"}, CorrectAnswer: "handicraft", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Từ vựng", Question: "This vase is a beautiful piece of _______. It's made of clay dug from our river banks.", Options: []string{"pottery", "drum", "basket", "painting"}, CorrectAnswer: "pottery", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Từ vựng", Question: "_______ demonstrate exceptional skills and dedication in their craft.", Options: []string{"Police officers", "Electricians", "Workers", "Artisans"}, CorrectAnswer: "Artisans", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Từ vựng", Question: "The bustling _______ of the city offers opportunities for entertainment and employment.", Options: []string{"infrastructure", "neighbourhood", "systems", "lifestyles"}, CorrectAnswer: "lifestyles", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Từ vựng", Question: "The downtown area is _______ with restaurants, shops, and entertainment venues.", Options: []string{"peaceful", "bustling", "empty", "silent"}, CorrectAnswer: "bustling", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Ngữ pháp", Question: "If there's a deadline approaching, students _______ manage their time wisely.", Options: []string{"need to", "can", "must", "will"}, CorrectAnswer: "must", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Ngữ pháp", Question: "Do you know _______ to find artisans to learn how to make handmade textiles?", Options: []string{"when", "where", "what", "who"}, CorrectAnswer: "where", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Cụm động từ", Question: "We are _______ a project on teen pressure at the moment.", Options: []string{"carrying out", "taking up", "cutting down on", "getting around"}, CorrectAnswer: "carrying out", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Cụm động từ", Question: "Conical hat making in the village has been passed _______ from generation to generation.", Options: []string{"up", "on", "down", "in"}, CorrectAnswer: "down", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Ngữ pháp", Question: "Many tourists wonder _______ specialty food in the Old Quarters in Ha Noi.", Options: []string{"where eating", "where did they eat", "can they eat", "where to eat"}, CorrectAnswer: "where to eat", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Giao tiếp", Question: "Joan: Do you need help with carrying those groceries? - Tom: _______", Options: []string{"Never mind. Let's get it done together.", "Thanks! That would be great. I appreciate it.", "Sure, I'd be happy to help.", "Of course not. I'd be happy to help you with that."}, CorrectAnswer: "Thanks! That would be great. I appreciate it.", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Giao tiếp", Question: "Julie: Thank you for showing me around Van Phuc Silk Village. - Lan: _______", Options: []string{"My pleasure.", "Yes, you should say so.", "You're alright.", "That would be great."}, CorrectAnswer: "My pleasure.", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Đọc điền từ", Question: "Few people go outside the city, and so they miss out on (26) _______ the scenery and the fascinating history of this beautiful area.", Options: []string{"questioning", "experiencing", "understanding", "welcoming"}, CorrectAnswer: "experiencing", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Đọc điền từ", Question: "The beautiful village of Tatterbridge was (27) _______ to the children's writer Jane Potter...", Options: []string{"shop", "school", "home", "cottage"}, CorrectAnswer: "home", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Đọc điền từ", Question: "Jane Potter's home is now a museum and teashop, and is well (28) _______ a visit just for its wonderful gardens.", Options: []string{"known", "worth", "value", "excited"}, CorrectAnswer: "known", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Đọc điền từ", Question: "...you can find lots of unusual gifts made (29) _______ hand by local artists.", Options: []string{"at", "with", "in", "by"}, CorrectAnswer: "by", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Đọc điền từ", Question: "...which have not changed since Jane Potter (30) _______ her stories there one hundred years ago.", Options: []string{"wrote", "designed", "carved", "weaved"}, CorrectAnswer: "wrote", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Đọc hiểu", Question: "What is the role of sleep for teens?", Options: []string{"It strengthens muscles.", "It reduces cravings for unhealthy foods.", "It helps with muscle growth.", "It improves academic performance."}, CorrectAnswer: "It improves academic performance.", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Đọc hiểu", Question: "How many hours of sleep do teens require per night?", Options: []string{"6-8 hours.", "4-6 hours.", "8-10 hours.", "10-12 hours."}, CorrectAnswer: "8-10 hours.", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Đọc hiểu", Question: "What reasons for the shortage of sleep in teens are NOT mentioned?", Options: []string{"Caffeine overconsumption.", "Extracurricular activities.", "Excitement after doing sports.", "Overuse of electronic devices."}, CorrectAnswer: "Caffeine overconsumption.", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Đọc hiểu", Question: "What does 'It' in the second paragraph refer to? (The sentence is 'It can also weaken the immune system...')", Options: []string{"Lack of sleep", "The benefit of sleep.", "Caffeine overconsumption", "The immune system"}, CorrectAnswer: "Lack of sleep", Grade: 9},
			{Subject: SubjectEnglish, Topic: "Đọc hiểu", Question: "What are teens necessary to do to sleep well at night?", Options: []string{"Drink coffee before going to bed.", "Use smartphones a lot before going to bed.", "Make a sleep environment friendly.", "Go to bed at different time."}, CorrectAnswer: "Make a sleep environment friendly.", Grade: 9},
		},
	},
	{
		ID:     "ta9-gk1-de1-oe",
		Title:  "Đề 1 (Global Success) - Viết",
		Source: "Đề thi giữa học kì 1 - Global Success",
		Type:   TypeOpenEnded,
		OpenEnded: []model.OpenEndedQuestion{
			{Topic: "Viết lại câu", Question: "Rewrite the sentence using the given words, add NO MORE THAN FIVE WORDS if necessary: 'busier / my schedule / get, / harder / it / become / find time / relaxation.'", SuggestedAnswer: "The busier my schedule gets, the harder it becomes to find time for relaxation."},
			{Topic: "Viết lại câu", Question: "Rewrite the sentence using the given words, add NO MORE THAN FIVE WORDS if necessary: 'our family, / baking secrets / typically / pass down / one generation / next.'", SuggestedAnswer: "In our family, baking secrets are typically passed down from one generation to the next."},
			{Topic: "Viết lại câu", Question: "Rewrite the sentence using the given words, add NO MORE THAN FIVE WORDS if necessary: 'Cut down / screen time / bedtime / improve / quality / your sleep.'", SuggestedAnswer: "Cutting down on screen time before bedtime can improve the quality of your sleep."},
			{Topic: "Viết lại câu", Question: "Complete the second sentence so that it means the same as the first one. Use the word in brackets (WHERE): 'Do you know the locations to buy traditional handicrafts?'", SuggestedAnswer: "Do you know **where to buy** traditional handicrafts?"},
			{Topic: "Viết lại câu", Question: "Complete the second sentence so that it means the same as the first one. Use the word in brackets (PASS): 'The local weavers typically hand down their weaving techniques to their eldest daughters.'", SuggestedAnswer: "The local weavers have a tradition **of passing down** their weaving techniques to their eldest daughters."},
		},
	},
}
