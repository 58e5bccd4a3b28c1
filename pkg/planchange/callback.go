package planchange

import "net/url"

// upgradeSuccessParam marks the checkout success callback URL so the return
// visit can be recognized and treated as the success path.
const upgradeSuccessParam = "upgrade_success"

// SuccessCallbackURL returns pageURL with the upgrade-success marker
// appended, suitable as the checkout success callback.
func SuccessCallbackURL(pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(upgradeSuccessParam, "true")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// IsUpgradeReturn reports whether rawURL is a checkout success callback.
// A redirected checkout completes only through this return visit, which
// callers must handle exactly like a synchronously applied change: re-fetch
// the billing snapshot and acknowledge success.
func IsUpgradeReturn(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Query().Get(upgradeSuccessParam) == "true"
}
