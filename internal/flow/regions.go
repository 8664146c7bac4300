package flow

// regions lists the selectable home regions shown on the registration screen.
var regions = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Delhi", "Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan",
	"Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh",
	"Uttarakhand", "West Bengal",
}

var regionSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(regions))
	for _, r := range regions {
		set[r] = struct{}{}
	}
	return set
}()

// Regions returns the selectable region list in display order.
func Regions() []string {
	return append([]string(nil), regions...)
}

// IsValidRegion reports whether a region is selectable.
func IsValidRegion(region string) bool {
	_, ok := regionSet[region]
	return ok
}
