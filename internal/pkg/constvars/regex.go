package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexDateYYYYMMDD                 = `^\d{4}-\d{2}-\d{2}$`
	RegexPhoneNumberGeneral           = `^\+[1-9]\d{9,14}$`
	RegexObjectIDHex                  = `^[a-fA-F0-9]{24}$`
)
