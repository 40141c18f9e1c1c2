package patterns

import "strings"

// countryCodes maps lower-cased country names, common city aliases and
// ISO 3166 alpha-2 codes to the alpha-2 code.
var countryCodes = map[string]string{
	// Remittance corridor countries
	"philippines": "PH", "manila": "PH", "cebu": "PH", "davao": "PH", "ph": "PH",
	"morocco": "MA", "casablanca": "MA", "rabat": "MA", "marrakech": "MA", "ma": "MA",
	"nigeria": "NG", "lagos": "NG", "abuja": "NG", "kano": "NG", "ng": "NG",

	// Majors
	"united states": "US", "usa": "US", "america": "US", "us": "US",
	"united kingdom": "GB", "uk": "GB", "england": "GB", "london": "GB", "gb": "GB",
	"france": "FR", "paris": "FR", "fr": "FR",
	"germany": "DE", "berlin": "DE", "de": "DE",
	"spain": "ES", "madrid": "ES", "es": "ES",
	"italy": "IT", "rome": "IT", "it": "IT",
	"canada": "CA", "toronto": "CA", "ca": "CA",
	"australia": "AU", "sydney": "AU", "au": "AU",
	"japan": "JP", "tokyo": "JP", "jp": "JP",
	"china": "CN", "beijing": "CN", "shanghai": "CN", "cn": "CN",
	"india": "IN", "mumbai": "IN", "delhi": "IN", "in": "IN",
	"brazil": "BR", "sao paulo": "BR", "br": "BR",
	"mexico": "MX", "mexico city": "MX", "mx": "MX",

	// Multi-word names
	"south korea": "KR", "korea": "KR", "seoul": "KR", "kr": "KR",
	"united arab emirates": "AE", "uae": "AE", "dubai": "AE", "abu dhabi": "AE", "ae": "AE",
	"saudi arabia": "SA", "riyadh": "SA", "sa": "SA",
	"south africa": "ZA", "johannesburg": "ZA", "za": "ZA",
	"hong kong": "HK", "hk": "HK",
	"new zealand": "NZ", "nz": "NZ",

	// Other common remittance destinations
	"singapore": "SG", "sg": "SG",
	"egypt": "EG", "cairo": "EG", "eg": "EG",
	"kenya": "KE", "nairobi": "KE", "ke": "KE",
	"ghana": "GH", "accra": "GH", "gh": "GH",
	"pakistan": "PK", "karachi": "PK", "pk": "PK",
	"bangladesh": "BD", "dhaka": "BD", "bd": "BD",
	"indonesia": "ID", "jakarta": "ID", "id": "ID",
	"vietnam": "VN", "hanoi": "VN", "vn": "VN",
	"thailand": "TH", "bangkok": "TH", "th": "TH",
	"turkey": "TR", "istanbul": "TR", "tr": "TR",
	"colombia": "CO", "bogota": "CO", "co": "CO",
	"argentina": "AR", "buenos aires": "AR", "ar": "AR",
	"peru": "PE", "lima": "PE", "pe": "PE",
	"portugal": "PT", "lisbon": "PT", "pt": "PT",
	"netherlands": "NL", "amsterdam": "NL", "nl": "NL",
	"switzerland": "CH", "zurich": "CH", "ch": "CH",
	"poland": "PL", "warsaw": "PL", "pl": "PL",
	"ireland": "IE", "dublin": "IE", "ie": "IE",
}

// localCurrencies maps an alpha-2 country code to its local currency code.
var localCurrencies = map[string]string{
	"PH": "PHP", "MA": "MAD", "NG": "NGN",
	"US": "USD", "GB": "GBP", "CA": "CAD", "AU": "AUD", "NZ": "NZD",
	"FR": "EUR", "DE": "EUR", "ES": "EUR", "IT": "EUR", "PT": "EUR",
	"NL": "EUR", "IE": "EUR",
	"JP": "JPY", "CN": "CNY", "IN": "INR", "BR": "BRL", "MX": "MXN",
	"KR": "KRW", "AE": "AED", "SA": "SAR", "ZA": "ZAR", "HK": "HKD",
	"SG": "SGD", "EG": "EGP", "KE": "KES", "GH": "GHS", "PK": "PKR",
	"BD": "BDT", "ID": "IDR", "VN": "VND", "TH": "THB", "TR": "TRY",
	"CO": "COP", "AR": "ARS", "PE": "PEN", "CH": "CHF", "PL": "PLN",
}

// CountryCode resolves a country name, city alias or alpha-2 code to the
// ISO 3166 alpha-2 code. Lookup is case-insensitive. Returns "" when the
// name is unknown.
func CountryCode(name string) string {
	return countryCodes[strings.ToLower(strings.TrimSpace(name))]
}

// LocalCurrency returns the local currency code for an alpha-2 country code,
// or "" when the country is unmapped.
func LocalCurrency(country string) string {
	return localCurrencies[strings.ToUpper(strings.TrimSpace(country))]
}

// Corridor derives the "<CURRENCY>-<LOCAL_CURRENCY>" routing identifier, for
// example "USD-PHP". Returns "" when either input is empty or the country has
// no mapped local currency.
func Corridor(currency, country string) string {
	if currency == "" || country == "" {
		return ""
	}
	local := LocalCurrency(country)
	if local == "" {
		return ""
	}
	return currency + "-" + local
}
