package catalog

import "github.com/gulfwise/finclinic/internal/model"

// ActiveRevision is the catalog revision compiled into the binary.
const ActiveRevision = "fc-v2"

// Default returns the active fc-v2 catalog: 15 questions across the six
// categories, weights summing to 100, with one conditional question
// (children's education) in Protecting Your Family.
//
// The data is validated through New at startup; a broken edit here
// fails process start rather than mis-scoring submissions.
func Default() (*Catalog, error) {
	return New(ActiveRevision, defaultQuestions())
}

// MustDefault is Default for tests and tooling where the compiled-in
// catalog is known-good.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

func defaultQuestions() []Question {
	return []Question{
		// Income Stream: 15 points.
		{
			ID: "fc_q1", Number: 1, Category: model.CategoryIncomeStream, Weight: 5,
			Text:   "How well are you managing your household monthly expenses?",
			TextAr: "ما مدى نجاحك في إدارة نفقاتك الشهرية المنزلية؟",
			Options: []Option{
				{Value: 5, Label: "My monthly expenses are always below my budget", LabelAr: "نفقاتي الشهرية دائماً أقل من ميزانيتي"},
				{Value: 4, Label: "I stay within my budget every month", LabelAr: "أبقى ضمن ميزانيتي كل شهر"},
				{Value: 3, Label: "My budget stays on track on most months", LabelAr: "ميزانيتي تسير على المسار الصحيح في معظم الأشهر"},
				{Value: 2, Label: "I usually go over budget with my spending", LabelAr: "عادةً ما أتجاوز الميزانية مع إنفاقي"},
				{Value: 1, Label: "I am unable to manage my monthly expenses", LabelAr: "أنا غير قادر على إدارة نفقاتي الشهرية"},
			},
		},
		{
			ID: "fc_q2", Number: 2, Category: model.CategoryIncomeStream, Weight: 10,
			Text:   "Do you have more than one source of income?",
			TextAr: "هل لديك أكثر من مصدر دخل؟",
			Options: []Option{
				{Value: 5, Label: "I have multiple & consistent income streams", LabelAr: "لدي مصادر دخل متعددة ومتسقة"},
				{Value: 4, Label: "I have additional income but it is not consistent", LabelAr: "لدي دخل إضافي ولكن ليس متسقاً"},
				{Value: 3, Label: "I have only 1 stream of consistent income", LabelAr: "لدي مصدر دخل واحد فقط متسق"},
				{Value: 2, Label: "I have only 1 stream of income and it is not consistent", LabelAr: "لدي مصدر دخل واحد فقط وليس متسقاً"},
				{Value: 1, Label: "I currently have no income stream", LabelAr: "ليس لدي حالياً أي مصدر دخل"},
			},
		},

		// Savings Habit: 20 points.
		{
			ID: "fc_q3", Number: 3, Category: model.CategorySavingsHabit, Weight: 10,
			Text:   "How much of your total income are you able to save every month?",
			TextAr: "ما مقدار إجمالي دخلك الذي تستطيع ادخاره كل شهر؟",
			Options: []Option{
				{Value: 5, Label: "More than 20% of my income", LabelAr: "أكثر من 20٪ من دخلي"},
				{Value: 4, Label: "15% to 20% of my income", LabelAr: "15٪ إلى 20٪ من دخلي"},
				{Value: 3, Label: "5% to 15% of my income", LabelAr: "5٪ إلى 15٪ من دخلي"},
				{Value: 2, Label: "Up to 5% of my income", LabelAr: "ما يصل إلى 5٪ من دخلي"},
				{Value: 1, Label: "I am not able to save from my income", LabelAr: "لا أستطيع الادخار من دخلي"},
			},
		},
		{
			ID: "fc_q4", Number: 4, Category: model.CategorySavingsHabit, Weight: 5,
			Text:   "What is the typical duration of your savings goals?",
			TextAr: "ما هي المدة النموذجية لأهداف الادخار الخاصة بك؟",
			Options: []Option{
				{Value: 5, Label: "I primarily save and invest for long-term goals (over 3 years)", LabelAr: "أدخر وأستثمر بشكل أساسي لأهداف طويلة الأجل (أكثر من 3 سنوات)"},
				{Value: 4, Label: "I save for medium-term goals (1-3 years)", LabelAr: "أدخر لأهداف متوسطة الأجل (1-3 سنوات)"},
				{Value: 3, Label: "I save for both short- and long-term goals", LabelAr: "أدخر لأهداف قصيرة وطويلة الأجل"},
				{Value: 2, Label: "I save for short-term goals (less than 1 year)", LabelAr: "أدخر لأهداف قصيرة الأجل (أقل من سنة واحدة)"},
				{Value: 1, Label: "I usually save only for immediate needs or emergencies", LabelAr: "عادةً أدخر فقط للاحتياجات الفورية أو حالات الطوارئ"},
			},
		},
		{
			ID: "fc_q5", Number: 5, Category: model.CategorySavingsHabit, Weight: 5,
			Text:   "When your income increases, how does your spending behavior change?",
			TextAr: "عندما يزداد دخلك، كيف يتغير سلوك الإنفاق لديك؟",
			Options: []Option{
				{Value: 5, Label: "My spending remains the same", LabelAr: "إنفاقي يبقى كما هو"},
				{Value: 4, Label: "My spending increases slightly", LabelAr: "إنفاقي يزداد قليلاً"},
				{Value: 3, Label: "My spending increase is the same as my income increase", LabelAr: "زيادة إنفاقي تساوي زيادة دخلي"},
				{Value: 2, Label: "My spending increase is slightly higher than my income increase", LabelAr: "زيادة إنفاقي أعلى قليلاً من زيادة دخلي"},
				{Value: 1, Label: "My spending is much higher than my income increase", LabelAr: "إنفاقي أعلى بكثير من زيادة دخلي"},
			},
		},

		// Emergency Savings: 20 points.
		{
			ID: "fc_q6", Number: 6, Category: model.CategoryEmergencySavings, Weight: 5,
			Text:   "Are you actively saving in an emergency fund?",
			TextAr: "هل تدخر بنشاط في صندوق الطوارئ؟",
			Options: []Option{
				{Value: 5, Label: "I already have a sufficient emergency fund", LabelAr: "لدي بالفعل صندوق طوارئ كافٍ"},
				{Value: 4, Label: "I save every month towards my emergency fund", LabelAr: "أدخر كل شهر لصندوق الطوارئ الخاص بي"},
				{Value: 3, Label: "I try to save consistently but not every month", LabelAr: "أحاول الادخار بانتظام لكن ليس كل شهر"},
				{Value: 2, Label: "I save when I can but not consistently", LabelAr: "أدخر عندما أستطيع ولكن ليس بشكل منتظم"},
				{Value: 1, Label: "One day I will start saving", LabelAr: "يوماً ما سأبدأ في الادخار"},
			},
		},
		{
			ID: "fc_q7", Number: 7, Category: model.CategoryEmergencySavings, Weight: 10,
			Text:   "Do you have enough emergency savings that can cover your basic expenses?",
			TextAr: "هل لديك مدخرات طوارئ كافية يمكن أن تغطي نفقاتك الأساسية؟",
			Options: []Option{
				{Value: 5, Label: "I can cover more than 6 months of my expenses", LabelAr: "أستطيع تغطية أكثر من 6 أشهر من نفقاتي"},
				{Value: 4, Label: "I can cover 5 to 6 months of my expenses", LabelAr: "أستطيع تغطية 5 إلى 6 أشهر من نفقاتي"},
				{Value: 3, Label: "I can cover 3 to 4 months of my expenses", LabelAr: "أستطيع تغطية 3 إلى 4 أشهر من نفقاتي"},
				{Value: 2, Label: "I can cover up to 3 months of my expenses", LabelAr: "أستطيع تغطية ما يصل إلى 3 أشهر من نفقاتي"},
				{Value: 1, Label: "I cannot cover my expenses", LabelAr: "لا أستطيع تغطية نفقاتي"},
			},
		},
		{
			ID: "fc_q8", Number: 8, Category: model.CategoryEmergencySavings, Weight: 5,
			Text:   "Where do you keep your emergency savings?",
			TextAr: "أين تحتفظ بمدخرات الطوارئ الخاصة بك؟",
			Options: []Option{
				{Value: 5, Label: "In my savings or current bank account", LabelAr: "في حساب التوفير أو الحساب الجاري الخاص بي"},
				{Value: 4, Label: "In term or fixed deposits", LabelAr: "في ودائع لأجل أو ثابتة"},
				{Value: 3, Label: "In my investment account", LabelAr: "في حساب الاستثمار الخاص بي"},
				{Value: 2, Label: "In the form of assets/commodities (gold/silver etc.)", LabelAr: "في شكل أصول/سلع (ذهب/فضة إلخ)"},
				{Value: 1, Label: "I do not have emergency savings", LabelAr: "ليس لدي مدخرات طوارئ"},
			},
		},

		// Debt Management: 15 points.
		{
			ID: "fc_q9", Number: 9, Category: model.CategoryDebtManagement, Weight: 10,
			Text:   "How often are you able to pay your bills and loan installments on time?",
			TextAr: "كم مرة تستطيع دفع فواتيرك وأقساط القروض في الوقت المحدد؟",
			Options: []Option{
				{Value: 5, Label: "I make my payments every month", LabelAr: "أقوم بدفع مستحقاتي كل شهر"},
				{Value: 4, Label: "I make my monthly payments but not consistently", LabelAr: "أقوم بدفع مستحقاتي الشهرية ولكن ليس بشكل منتظم"},
				{Value: 3, Label: "I occasionally make my monthly payments", LabelAr: "أحياناً أقوم بدفع مستحقاتي الشهرية"},
				{Value: 2, Label: "I miss most of my monthly payments", LabelAr: "أفوت معظم مدفوعاتي الشهرية"},
				{Value: 1, Label: "I am not able to make my monthly payments", LabelAr: "لا أستطيع دفع مستحقاتي الشهرية"},
			},
		},
		{
			ID: "fc_q10", Number: 10, Category: model.CategoryDebtManagement, Weight: 5,
			Text:   "What percentage of monthly income goes to debt payments?",
			TextAr: "ما هي النسبة المئوية من الدخل الشهري التي تذهب لسداد الديون؟",
			Options: []Option{
				{Value: 5, Label: "I have no debt", LabelAr: "ليس لدي ديون"},
				{Value: 4, Label: "Less than 20% of my monthly income", LabelAr: "أقل من 20٪ من دخلي الشهري"},
				{Value: 3, Label: "Less than 35% of my monthly income", LabelAr: "أقل من 35٪ من دخلي الشهري"},
				{Value: 2, Label: "Less than 50% of my monthly income", LabelAr: "أقل من 50٪ من دخلي الشهري"},
				{Value: 1, Label: "More than 50% of my monthly income", LabelAr: "أكثر من 50٪ من دخلي الشهري"},
			},
		},

		// Retirement Planning: 20 points.
		{
			ID: "fc_q11", Number: 11, Category: model.CategoryRetirement, Weight: 5,
			Text:   "Are you actively saving or investing for retirement?",
			TextAr: "هل تدخر أو تستثمر بنشاط للتقاعد؟",
			Options: []Option{
				{Value: 5, Label: "Yes, contributing regularly to a retirement plan with a stable plan", LabelAr: "نعم، أساهم بانتظام في خطة تقاعد ولدي خطة مستقرة"},
				{Value: 4, Label: "Yes, I save for retirement occasionally, but my contributions vary depending on my monthly expenses", LabelAr: "نعم، أدخر للتقاعد أحياناً، لكن مساهماتي تتفاوت حسب نفقاتي الشهرية"},
				{Value: 3, Label: "I have started saving or investing for retirement, but I don't have a clear plan or specific goal", LabelAr: "بدأت في الادخار أو الاستثمار للتقاعد، لكن ليس لدي خطة واضحة أو هدف محدد"},
				{Value: 2, Label: "Yes, but I save whenever I can and without a clear plan", LabelAr: "نعم، لكنني أدخر متى استطعت وبدون خطة واضحة"},
				{Value: 1, Label: "No, I have not thought about saving for retirement", LabelAr: "لا، لم أفكر في الادخار للتقاعد"},
			},
		},
		{
			ID: "fc_q12", Number: 12, Category: model.CategoryRetirement, Weight: 10,
			Text:   "How confident do you feel about maintaining a comfortable lifestyle after retirement?",
			TextAr: "ما مدى ثقتك في الحفاظ على نمط حياة مريح بعد التقاعد؟",
			Options: []Option{
				{Value: 5, Label: "I have already secured a retirement income", LabelAr: "لقد أمّنت بالفعل دخلاً للتقاعد"},
				{Value: 4, Label: "I am highly confident of having a stable income after retirement", LabelAr: "أنا واثق جداً من الحصول على دخل مستقر بعد التقاعد"},
				{Value: 3, Label: "I am somewhat confident of having a stable income after retirement", LabelAr: "أنا واثق إلى حد ما من الحصول على دخل مستقر بعد التقاعد"},
				{Value: 2, Label: "I am not very confident of having a stable income after retirement", LabelAr: "لست واثقاً جداً من الحصول على دخل مستقر بعد التقاعد"},
				{Value: 1, Label: "I am certain I will not have a stable income after retirement", LabelAr: "أنا متأكد أنني لن أحصل على دخل مستقر بعد التقاعد"},
			},
		},
		{
			ID: "fc_q13", Number: 13, Category: model.CategoryRetirement, Weight: 5,
			Text:   "How much of your current income will you be able to cover after your retirement?",
			TextAr: "ما مقدار دخلك الحالي الذي ستتمكن من تغطيته بعد تقاعدك؟",
			Options: []Option{
				{Value: 5, Label: "My retirement income will be able to provide more than 80% of my current income", LabelAr: "سيتمكن دخل التقاعد من توفير أكثر من 80٪ من دخلي الحالي"},
				{Value: 4, Label: "My retirement income will be able to provide 50% to 80% of my current income", LabelAr: "سيتمكن دخل التقاعد من توفير 50٪ إلى 80٪ من دخلي الحالي"},
				{Value: 3, Label: "My retirement income will be able to provide 20% to 50% of my current income", LabelAr: "سيتمكن دخل التقاعد من توفير 20٪ إلى 50٪ من دخلي الحالي"},
				{Value: 2, Label: "My retirement income will be able to provide up to 20% of my current income", LabelAr: "سيتمكن دخل التقاعد من توفير ما يصل إلى 20٪ من دخلي الحالي"},
				{Value: 1, Label: "I am certain I will not have a stable income after retirement", LabelAr: "أنا متأكد أنني لن أحصل على دخل مستقر بعد التقاعد"},
			},
		},

		// Protecting Your Family: 10 points.
		{
			ID: "fc_q14", Number: 14, Category: model.CategoryProtectingFamily, Weight: 5,
			Text:   "Do you have adequate life Takaful/Insurance coverage?",
			TextAr: "هل لديك تغطية تكافل/تأمين على الحياة كافية؟",
			Options: []Option{
				{Value: 5, Label: "I have sufficient coverage to cover 12 months of my income", LabelAr: "لدي تغطية كافية لتغطية 12 شهراً من دخلي"},
				{Value: 4, Label: "I have sufficient coverage to cover up to 11 months of my income", LabelAr: "لدي تغطية كافية لتغطية ما يصل إلى 11 شهراً من دخلي"},
				{Value: 3, Label: "I have enough coverage to cover up to 5 months of my income", LabelAr: "لدي تغطية كافية لتغطية ما يصل إلى 5 أشهر من دخلي"},
				{Value: 2, Label: "I have enough coverage for up to 3 months of my income", LabelAr: "لدي تغطية كافية لما يصل إلى 3 أشهر من دخلي"},
				{Value: 1, Label: "I do not have any coverage", LabelAr: "ليس لدي أي تغطية"},
			},
		},
		{
			ID: "fc_q15", Number: 15, Category: model.CategoryProtectingFamily, Weight: 5,
			Text:        "Are you actively saving for education savings for your children?",
			TextAr:      "هل تدخر بنشاط لمدخرات تعليم أطفالك؟",
			Conditional: true,
			Options: []Option{
				{Value: 5, Label: "I don't have any need to save for my children's education", LabelAr: "ليس لدي أي حاجة للادخار لتعليم أطفالي"},
				{Value: 4, Label: "Yes, I have sufficient funds for my children's education", LabelAr: "نعم، لدي أموال كافية لتعليم أطفالي"},
				{Value: 3, Label: "Yes, I am saving towards having a sufficient education fund", LabelAr: "نعم، أدخر نحو الحصول على صندوق تعليم كافٍ"},
				{Value: 2, Label: "Yes, but I am starting to save for an education fund", LabelAr: "نعم، لكنني بدأت في الادخار لصندوق تعليم"},
				{Value: 1, Label: "Yes, but I do not have any education saving for my children", LabelAr: "نعم، لكن ليس لدي أي مدخرات تعليمية لأطفالي"},
			},
		},
	}
}
