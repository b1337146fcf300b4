// Package display renders domain values the way the desk presents them:
// a USD currency string with zh-CN digit grouping, the shop's date format,
// and coarse relative times for recent activity.
package display

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"coffeeshop/internal/core/domain/model/kernel"
)

var printer = message.NewPrinter(language.SimplifiedChinese)

// Currency formats an amount as the desk shows prices, e.g. "US$13.00".
// Amounts are labeled USD while digits group per the zh-CN locale
// ("US$1,234.50").
func Currency(amount kernel.Money) string {
	return printer.Sprintf("US$%.2f", amount.Float64())
}

// Date formats a timestamp as "2006年01月02日 15:04".
func Date(t time.Time) string {
	return t.Format("2006年01月02日 15:04")
}

// RelativeTime renders how long ago a timestamp was, coarsely:
// under a minute "刚刚", under an hour in minutes, under a day in hours,
// anything older as a month-day date.
func RelativeTime(t, now time.Time) string {
	minutes := int(now.Sub(t).Minutes())

	switch {
	case minutes < 1:
		return "刚刚"
	case minutes < 60:
		return fmt.Sprintf("%d分钟前", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%d小时前", minutes/60)
	default:
		return t.Format("01月02日")
	}
}
