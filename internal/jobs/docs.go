// Package jobs contains the scheduled background jobs of the application,
// coordinated by JobManager. The only job today is the quota cleanup, which
// prunes expired daily quota buckets.
package jobs
