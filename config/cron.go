package config

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs lists statically configured jobs. Jobs shipped with the module
// register themselves through cron.Register from cron/jobs instead, so this
// map stays empty unless a deployment wires its own entries.
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
