package insight

import "github.com/gulfwise/finclinic/internal/model"

// DefaultMatrix returns the shipped insight content: a default entry
// for every (category, level) bucket plus conditional variants where
// the advice genuinely differs by demographics. The matrix is sparse;
// most buckets carry only the default.
func DefaultMatrix() (*Matrix, error) {
	return NewMatrix(defaultBuckets())
}

// MustDefaultMatrix is DefaultMatrix for tests and tooling where the
// compiled-in content is known-good.
func MustDefaultMatrix() *Matrix {
	m, err := DefaultMatrix()
	if err != nil {
		panic(err)
	}
	return m
}

func defaultBuckets() map[BucketKey][]Entry {
	return map[BucketKey][]Entry{
		// Income Stream.
		{Category: model.CategoryIncomeStream, Level: model.StatusAtRisk}: {
			{
				Tag:    TagIncomeBelow30k,
				Text:   "Your income sources appear limited or inconsistent. Protect your essentials first: keep fixed commitments low and explore a small, steady side income before taking on new obligations.",
				TextAr: "تبدو مصادر دخلك محدودة أو غير منتظمة. احمِ احتياجاتك الأساسية أولاً: أبقِ الالتزامات الثابتة منخفضة وابحث عن دخل جانبي صغير وثابت قبل تحمل التزامات جديدة.",
			},
			{
				Tag:    TagDefault,
				Text:   "Your income sources appear limited or inconsistent. Consider building a safety net by diversifying income streams or exploring side opportunities.",
				TextAr: "تبدو مصادر دخلك محدودة أو غير منتظمة. فكر في بناء شبكة أمان من خلال تنويع مصادر الدخل أو استكشاف فرص جانبية.",
			},
		},
		{Category: model.CategoryIncomeStream, Level: model.StatusGood}: {
			{
				Tag:    TagDefault,
				Text:   "Your income health is reasonable and can be improved by looking for multiple streams of income to increase financial resilience.",
				TextAr: "وضع دخلك معقول ويمكن تحسينه بالبحث عن مصادر دخل متعددة لزيادة مرونتك المالية.",
			},
		},
		{Category: model.CategoryIncomeStream, Level: model.StatusExcellent}: {
			{
				Tag:    TagIncomeAbove30k,
				Text:   "Your income stream is healthy and consistent. With your earning level, focus on long-term wealth building and putting surplus income to work through diversified investments.",
				TextAr: "مصدر دخلك صحي ومنتظم. مع مستوى دخلك، ركز على بناء الثروة طويلة الأجل وتشغيل فائض الدخل من خلال استثمارات متنوعة.",
			},
			{
				Tag:    TagDefault,
				Text:   "Your income stream is healthy and consistent. Continue to focus on long-term wealth building and optimizing your earning potential.",
				TextAr: "مصدر دخلك صحي ومنتظم. واصل التركيز على بناء الثروة طويلة الأجل وتحسين إمكانات دخلك.",
			},
		},

		// Savings Habit.
		{Category: model.CategorySavingsHabit, Level: model.StatusAtRisk}: {
			{
				Tag:    TagIncomeAbove30k,
				Text:   "Your savings habit seems irregular despite a comfortable income. Automate a fixed monthly transfer on payday so saving happens before spending does.",
				TextAr: "تبدو عادة الادخار لديك غير منتظمة رغم دخلك المريح. قم بأتمتة تحويل شهري ثابت يوم استلام الراتب حتى يسبق الادخار الإنفاق.",
			},
			{
				Tag:    TagIncomeBelow30k,
				Text:   "Your savings habit seems irregular or minimal. Start small: even a modest automatic monthly transfer builds consistency and discipline over time.",
				TextAr: "تبدو عادة الادخار لديك غير منتظمة أو ضئيلة. ابدأ صغيراً: حتى التحويل الشهري التلقائي المتواضع يبني الانتظام والانضباط مع الوقت.",
			},
			{
				Tag:    TagDefault,
				Text:   "Your savings habit seems irregular or minimal. Start small with automatic monthly savings transfers to build consistency and discipline.",
				TextAr: "تبدو عادة الادخار لديك غير منتظمة أو ضئيلة. ابدأ صغيراً بتحويلات ادخار شهرية تلقائية لبناء الانتظام والانضباط.",
			},
		},
		{Category: model.CategorySavingsHabit, Level: model.StatusGood}: {
			{
				Tag:    TagElse,
				Text:   "You're saving occasionally, but your savings rate could be higher. Try setting specific savings goals aligned with your financial priorities.",
				TextAr: "أنت تدخر من حين لآخر، لكن يمكن رفع معدل ادخارك. جرب وضع أهداف ادخار محددة تتماشى مع أولوياتك المالية.",
			},
			{
				Tag:    TagDefault,
				Text:   "You're saving occasionally, but your savings rate could be higher. Set specific savings goals aligned with your financial priorities.",
				TextAr: "أنت تدخر من حين لآخر، لكن يمكن رفع معدل ادخارك. ضع أهداف ادخار محددة تتماشى مع أولوياتك المالية.",
			},
		},
		{Category: model.CategorySavingsHabit, Level: model.StatusExcellent}: {
			{
				Tag:    TagDefault,
				Text:   "You have a healthy and consistent savings routine. You can now focus on optimizing returns through diversified investments.",
				TextAr: "لديك روتين ادخار صحي ومنتظم. يمكنك الآن التركيز على تحسين العوائد من خلال استثمارات متنوعة.",
			},
		},

		// Emergency Savings.
		{Category: model.CategoryEmergencySavings, Level: model.StatusAtRisk}: {
			{
				Tag:    TagChildrenAboveZero,
				Text:   "You do not have enough funds set aside for unexpected expenses, and your family depends on your income. Prioritize an emergency fund covering at least 3-6 months of essential expenses.",
				TextAr: "ليس لديك أموال كافية مخصصة للنفقات غير المتوقعة، وعائلتك تعتمد على دخلك. أعطِ الأولوية لصندوق طوارئ يغطي ما لا يقل عن 3-6 أشهر من النفقات الأساسية.",
			},
			{
				Tag:    TagDefault,
				Text:   "You do not have enough funds set aside for unexpected expenses. Aim to build an emergency fund covering at least 3-6 months of essential expenses.",
				TextAr: "ليس لديك أموال كافية مخصصة للنفقات غير المتوقعة. اسعَ لبناء صندوق طوارئ يغطي ما لا يقل عن 3-6 أشهر من النفقات الأساسية.",
			},
		},
		{Category: model.CategoryEmergencySavings, Level: model.StatusGood}: {
			{
				Tag:    TagDefault,
				Text:   "You have a partial safety net, but it may not be sufficient for larger financial shocks. Work on increasing your emergency fund to 6 months of expenses.",
				TextAr: "لديك شبكة أمان جزئية، لكنها قد لا تكفي للصدمات المالية الكبيرة. اعمل على زيادة صندوق الطوارئ إلى 6 أشهر من النفقات.",
			},
		},
		{Category: model.CategoryEmergencySavings, Level: model.StatusExcellent}: {
			{
				Tag:    TagDefault,
				Text:   "You're well-prepared for emergencies with strong liquidity. You can now focus on investing surplus funds for long-term growth.",
				TextAr: "أنت مستعد جيداً للطوارئ بسيولة قوية. يمكنك الآن التركيز على استثمار الفائض لتحقيق نمو طويل الأجل.",
			},
		},

		// Debt Management.
		{Category: model.CategoryDebtManagement, Level: model.StatusAtRisk}: {
			{
				Tag:    TagIncomeBelow30k,
				Text:   "Your debt repayments are weighing on a tight budget. Prioritize paying off the highest-interest debt first and avoid taking on any new commitments.",
				TextAr: "أقساط ديونك تضغط على ميزانية محدودة. أعطِ الأولوية لسداد الدين الأعلى فائدة أولاً وتجنب أي التزامات جديدة.",
			},
			{
				Tag:    TagDefault,
				Text:   "Your debt levels or repayment habits may be affecting your financial flexibility. Prioritize paying off high-interest debt and avoid taking on new debt.",
				TextAr: "قد تؤثر مستويات ديونك أو عادات السداد لديك على مرونتك المالية. أعطِ الأولوية لسداد الديون عالية الفائدة وتجنب ديوناً جديدة.",
			},
		},
		{Category: model.CategoryDebtManagement, Level: model.StatusGood}: {
			{
				Tag:    TagDefault,
				Text:   "You manage your debt moderately well, but there's room for improvement. Consider consolidating high-interest debts or increasing monthly payments.",
				TextAr: "تدير ديونك بشكل جيد نسبياً، لكن هناك مجال للتحسين. فكر في دمج الديون عالية الفائدة أو زيادة الدفعات الشهرية.",
			},
		},
		{Category: model.CategoryDebtManagement, Level: model.StatusExcellent}: {
			{
				Tag:    TagDefault,
				Text:   "You maintain excellent control over your debt. Continue this discipline and use credit strategically for wealth-building purposes.",
				TextAr: "تحافظ على سيطرة ممتازة على ديونك. واصل هذا الانضباط واستخدم الائتمان بشكل استراتيجي لبناء الثروة.",
			},
		},

		// Retirement Planning.
		{Category: model.CategoryRetirement, Level: model.StatusAtRisk}: {
			{
				Tag:    TagEmiratiWoman,
				Text:   "You haven't yet started planning for retirement. Alongside any pension entitlement, a personal retirement savings plan started today, even with small contributions, makes a significant difference over time.",
				TextAr: "لم تبدئي بعد في التخطيط للتقاعد. إلى جانب أي استحقاق تقاعدي، فإن خطة ادخار شخصية للتقاعد تبدأ اليوم، حتى بمساهمات صغيرة، تحدث فرقاً كبيراً مع الوقت.",
			},
			{
				Tag:    TagDefault,
				Text:   "You haven't yet started planning for retirement. Starting today, even with small contributions, can make a significant difference over time.",
				TextAr: "لم تبدأ بعد في التخطيط للتقاعد. البدء اليوم، حتى بمساهمات صغيرة، يمكن أن يحدث فرقاً كبيراً مع الوقت.",
			},
		},
		{Category: model.CategoryRetirement, Level: model.StatusGood}: {
			{
				Tag:    TagDefault,
				Text:   "You have some plans for retirement but may not be saving enough. Consider increasing your contributions to retirement accounts and reviewing your investment strategy.",
				TextAr: "لديك بعض الخطط للتقاعد لكنك قد لا تدخر بما يكفي. فكر في زيادة مساهماتك في حسابات التقاعد ومراجعة استراتيجيتك الاستثمارية.",
			},
		},
		{Category: model.CategoryRetirement, Level: model.StatusExcellent}: {
			{
				Tag:    TagDefault,
				Text:   "You're actively preparing for retirement. Keep reviewing your portfolio to ensure it is well-diversified and aligned with your long-term goals.",
				TextAr: "أنت تستعد بنشاط للتقاعد. واصل مراجعة محفظتك للتأكد من أنها متنوعة جيداً ومتوافقة مع أهدافك طويلة الأجل.",
			},
		},

		// Protecting Your Family.
		{Category: model.CategoryProtectingFamily, Level: model.StatusAtRisk}: {
			{
				Tag:    TagChildrenZero,
				Text:   "You may not have adequate protection in place for yourself. Explore Takaful (Islamic insurance) cover so an unexpected event does not undo your financial progress.",
				TextAr: "قد لا تكون لديك حماية كافية لنفسك. استكشف تغطية التكافل (التأمين الإسلامي) حتى لا يؤدي حدث غير متوقع إلى تقويض تقدمك المالي.",
			},
			{
				Tag:    TagChildrenAboveZero,
				Text:   "You may not have adequate protection for your family. Explore Takaful (Islamic insurance) and education savings plans to safeguard your children's future.",
				TextAr: "قد لا تكون لديك حماية كافية لعائلتك. استكشف التكافل (التأمين الإسلامي) وخطط ادخار التعليم لحماية مستقبل أطفالك.",
			},
			{
				Tag:    TagDefault,
				Text:   "You may not have adequate protection for yourself or your family. Explore Takaful (Islamic insurance) and savings plans to safeguard your loved ones.",
				TextAr: "قد لا تكون لديك حماية كافية لنفسك أو لعائلتك. استكشف التكافل (التأمين الإسلامي) وخطط الادخار لحماية أحبائك.",
			},
		},
		{Category: model.CategoryProtectingFamily, Level: model.StatusGood}: {
			{
				Tag:    TagDefault,
				Text:   "You have basic financial protection for your family, but coverage may be limited. Review your insurance needs annually as your circumstances change.",
				TextAr: "لديك حماية مالية أساسية لعائلتك، لكن التغطية قد تكون محدودة. راجع احتياجاتك التأمينية سنوياً مع تغير ظروفك.",
			},
		},
		{Category: model.CategoryProtectingFamily, Level: model.StatusExcellent}: {
			{
				Tag:    TagDefault,
				Text:   "You have built-in systems for financial protection. Keep your coverage updated as your family situation and financial goals evolve.",
				TextAr: "لديك أنظمة قائمة للحماية المالية. حافظ على تحديث تغطيتك مع تطور وضع عائلتك وأهدافك المالية.",
			},
		},
	}
}
