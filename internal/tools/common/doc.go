// Package common holds helpers shared by the tool packages, chiefly the
// instrumented handler wrapper that records tool and provider metrics.
package common
