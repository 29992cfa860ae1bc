// Package i18n holds the static UI string tables served to clients.
// Arabic is the primary language; English is the fallback pair.  There
// is no pluralization or interpolation, callers concatenate strings
// themselves.
package i18n

// Supported language tags.
const (
	LangArabic  = "ar"
	LangEnglish = "en"
)

// Supported reports whether lang is a known language tag.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Translate returns the display text for key in the given language.
// When the language or the key is unknown, the key itself is returned
// so a missing string never blanks the UI.
func Translate(lang, key string) string {
	t, ok := tables[lang]
	if !ok {
		return key
	}
	if v, ok := t[key]; ok {
		return v
	}
	return key
}

// Table returns a copy of the full string table for lang, or nil when
// the language is unknown.  Handlers serve this to clients so the
// front-end does not ship its own copy.
func Table(lang string) map[string]string {
	t, ok := tables[lang]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

var tables = map[string]map[string]string{
	LangArabic: {
		// App
		"appName":    "ربط الدم",
		"appTagline": "ربط القلوب، إنقاذ الأرواح",

		// Authentication
		"signIn":        "تسجيل الدخول",
		"signUp":        "إنشاء حساب",
		"email":         "البريد الإلكتروني",
		"password":      "كلمة المرور",
		"enterEmail":    "أدخل بريدك الإلكتروني",
		"enterPassword": "أدخل كلمة المرور",
		"donateBlood":   "التبرع بالدم",
		"requestBlood":  "طلب الدم",
		"iWantTo":       "أريد أن:",
		"noAccount":     "ليس لديك حساب؟ سجل الآن",
		"haveAccount":   "لديك حساب بالفعل؟ سجل الدخول",

		// Navigation
		"dashboard":  "لوحة التحكم",
		"profile":    "الملف الشخصي",
		"newRequest": "طلب جديد",
		"logout":     "تسجيل الخروج",

		// Profile forms
		"completeDonorProfile":     "أكمل ملف المتبرع",
		"completeRecipientProfile": "أكمل ملف المستقبل",
		"helpConnectDonors":        "ساعدنا في ربطك بالمرضى المحتاجين",
		"helpDonorsFind":           "ساعد المتبرعين في العثور عليك ومساعدتك",
		"fullName":                 "الاسم الكامل",
		"enterFullName":            "أدخل اسمك الكامل",
		"age":                      "العمر",
		"yourAge":                  "عمرك",
		"gender":                   "الجنس",
		"male":                     "ذكر",
		"female":                   "أنثى",
		"bloodType":                "فصيلة الدم",
		"phoneNumber":              "رقم الهاتف",
		"yourPhone":                "رقم هاتفك",
		"city":                     "المدينة",
		"yourCity":                 "مدينتك",
		"lastDonationDate":         "تاريخ آخر تبرع (اختياري)",
		"currentlyAvailable":       "متاح حالياً للتبرع بالدم",
		"completeProfile":          "إكمال الملف الشخصي",
		"contactName":              "اسم جهة الاتصال",
		"hospitalName":             "اسم المستشفى/المركز الطبي",
		"hospitalCity":             "مدينة المستشفى",
		"patientCondition":         "حالة المريض (اختياري)",
		"patientConditionDesc":     "وصف موجز لحالة المريض أو الوضع الطبي",
		"contactNumber":            "رقم الاتصال",

		// Blood request
		"createBloodRequest":  "إنشاء طلب دم",
		"helpConnectDonors2":  "ساعدنا في ربطك بالمتبرعين المتاحين",
		"bloodTypeNeeded":     "فصيلة الدم المطلوبة",
		"unitsNeeded":         "عدد الوحدات المطلوبة",
		"urgencyLevel":        "مستوى الإلحاح",
		"lowPriority":         "أولوية منخفضة",
		"mediumPriority":      "أولوية متوسطة",
		"highPriority":        "أولوية عالية",
		"criticalEmergency":   "حرج/طوارئ",
		"additionalNotes":     "ملاحظات إضافية (اختياري)",
		"additionalNotesDesc": "أي معلومات إضافية قد تساعد المتبرعين (مثل حالة طبية محددة، وقت التبرع المفضل، إلخ)",
		"createRequest":       "إنشاء الطلب",

		// Dashboard
		"welcomeBack":          "مرحباً بعودتك",
		"readyToSave":          "مستعد لإنقاذ الأرواح اليوم؟",
		"welcome":              "مرحباً",
		"location":             "الموقع",
		"available":            "متاح",
		"notAvailable":         "غير متاح",
		"filterRequests":       "تصفية الطلبات",
		"urgencyLevel2":        "مستوى الإلحاح",
		"allUrgencyLevels":     "جميع مستويات الإلحاح",
		"showOnlyMyCity":       "إظهار الطلبات في مدينتي فقط",
		"matchingRequests":     "الطلبات المطابقة",
		"noMatchingRequests":   "لا توجد طلبات مطابقة",
		"noRequestsDesc":       "لا توجد حالياً طلبات دم تطابق فصيلة دمك وموقعك.",
		"noRequestsFilters":    "لا توجد طلبات تطابق المرشحات الحالية. جرب تعديل إعدادات المرشح.",
		"activeRequests":       "الطلبات النشطة",
		"fulfilled":            "مكتملة",
		"totalRequests":        "إجمالي الطلبات",
		"noActiveRequests":     "لا توجد طلبات نشطة",
		"noActiveRequestsDesc": "ليس لديك أي طلبات دم نشطة في الوقت الحالي.",
		"createFirstRequest":   "إنشاء طلبك الأول",
		"requestHistory":       "تاريخ الطلبات",

		// Request card
		"unitsNeeded2":       "وحدة مطلوبة",
		"posted":             "تم النشر",
		"contact":            "جهة الاتصال",
		"donorsResponded":    "متبرع استجاب",
		"willingToDonate":    "أنا مستعد للتبرع",
		"alreadyResponded":   "تم الرد بالفعل",
		"donorsWhoResponded": "المتبرعين الذين استجابوا",
		"respondedOn":        "استجاب في",
		"contactDirectly":    "اتصل مباشرة",

		// Profile display
		"donorProfile":     "ملف المتبرع",
		"recipientProfile": "ملف المستقبل",
		"name":             "الاسم",
		"hospital":         "المستشفى",
		"phone":            "الهاتف",
		"availability":     "التوفر",
		"lastDonation":     "آخر تبرع",

		// Common
		"low":      "منخفض",
		"medium":   "متوسط",
		"high":     "عالي",
		"critical": "حرج",
		"units":    "وحدات",
		"unit":     "وحدة",

		// Validation
		"authFailed":           "فشل في المصادقة. يرجى المحاولة مرة أخرى.",
		"errorOccurred":        "حدث خطأ. يرجى المحاولة مرة أخرى.",
		"completeProfileFirst": "يرجى إكمال ملفك الشخصي أولاً.",

		// Meta
		"language": "اللغة",
		"arabic":   "العربية",
		"english":  "English",
	},
	LangEnglish: {
		// App
		"appName":    "BloodConnect",
		"appTagline": "Connecting hearts, saving lives",

		// Authentication
		"signIn":        "Sign In",
		"signUp":        "Sign Up",
		"email":         "Email Address",
		"password":      "Password",
		"enterEmail":    "Enter your email",
		"enterPassword": "Enter your password",
		"donateBlood":   "Donate Blood",
		"requestBlood":  "Request Blood",
		"iWantTo":       "I want to:",
		"noAccount":     "Don't have an account? Sign up",
		"haveAccount":   "Already have an account? Sign in",

		// Navigation
		"dashboard":  "Dashboard",
		"profile":    "Profile",
		"newRequest": "New Request",
		"logout":     "Logout",

		// Profile forms
		"completeDonorProfile":     "Complete Your Donor Profile",
		"completeRecipientProfile": "Complete Your Recipient Profile",
		"helpConnectDonors":        "Help us connect you with patients in need",
		"helpDonorsFind":           "Help donors find and assist you",
		"fullName":                 "Full Name",
		"enterFullName":            "Enter your full name",
		"age":                      "Age",
		"yourAge":                  "Your age",
		"gender":                   "Gender",
		"male":                     "Male",
		"female":                   "Female",
		"bloodType":                "Blood Type",
		"phoneNumber":              "Phone Number",
		"yourPhone":                "Your phone number",
		"city":                     "City",
		"yourCity":                 "Your city",
		"lastDonationDate":         "Last Donation Date (Optional)",
		"currentlyAvailable":       "I am currently available to donate blood",
		"completeProfile":          "Complete Profile",
		"contactName":              "Contact Name",
		"hospitalName":             "Hospital/Medical Center",
		"hospitalCity":             "Hospital city",
		"patientCondition":         "Patient Condition (Optional)",
		"patientConditionDesc":     "Brief description of patient condition or medical situation",
		"contactNumber":            "Your contact number",

		// Blood request
		"createBloodRequest":  "Create Blood Request",
		"helpConnectDonors2":  "Help us connect you with available donors",
		"bloodTypeNeeded":     "Blood Type Needed",
		"unitsNeeded":         "Units Needed",
		"urgencyLevel":        "Urgency Level",
		"lowPriority":         "Low Priority",
		"mediumPriority":      "Medium Priority",
		"highPriority":        "High Priority",
		"criticalEmergency":   "Critical/Emergency",
		"additionalNotes":     "Additional Notes (Optional)",
		"additionalNotesDesc": "Any additional information that might help donors (e.g., specific medical condition, preferred donation time, etc.)",
		"createRequest":       "Create Request",

		// Dashboard
		"welcomeBack":          "Welcome back",
		"readyToSave":          "Ready to save lives today?",
		"welcome":              "Welcome",
		"location":             "Location",
		"available":            "Available",
		"notAvailable":         "Not Available",
		"filterRequests":       "Filter Requests",
		"urgencyLevel2":        "Urgency Level",
		"allUrgencyLevels":     "All Urgency Levels",
		"showOnlyMyCity":       "Show only requests in my city",
		"matchingRequests":     "Matching Requests",
		"noMatchingRequests":   "No matching requests",
		"noRequestsDesc":       "There are currently no blood requests matching your blood type and location.",
		"noRequestsFilters":    "No requests match your current filters. Try adjusting your filter settings.",
		"activeRequests":       "Active Requests",
		"fulfilled":            "Fulfilled",
		"totalRequests":        "Total Requests",
		"noActiveRequests":     "No active requests",
		"noActiveRequestsDesc": "You don't have any active blood requests at the moment.",
		"createFirstRequest":   "Create Your First Request",
		"requestHistory":       "Request History",

		// Request card
		"unitsNeeded2":       "unit(s) needed",
		"posted":             "Posted",
		"contact":            "Contact",
		"donorsResponded":    "donor(s) have responded",
		"willingToDonate":    "I'm willing to donate",
		"alreadyResponded":   "Already Responded",
		"donorsWhoResponded": "Donors who responded",
		"respondedOn":        "Responded on",
		"contactDirectly":    "Contact directly",

		// Profile display
		"donorProfile":     "Donor Profile",
		"recipientProfile": "Recipient Profile",
		"name":             "Name",
		"hospital":         "Hospital",
		"phone":            "Phone",
		"availability":     "Availability",
		"lastDonation":     "Last Donation",

		// Common
		"low":      "low",
		"medium":   "medium",
		"high":     "high",
		"critical": "critical",
		"units":    "units",
		"unit":     "unit",

		// Validation
		"authFailed":           "Authentication failed. Please try again.",
		"errorOccurred":        "An error occurred. Please try again.",
		"completeProfileFirst": "Please complete your profile first.",

		// Meta
		"language": "Language",
		"arabic":   "العربية",
		"english":  "English",
	},
}
