// Package gcal builds Google Calendar event-creation links. No network
// calls are made; the output is a URL the user can open in a browser.
package gcal
