/*
	Project: EduLearn - online courses with embedded video lessons
	Apps: apps/api (HTTP API), apps/admin (catalog CLI)
*/
package edulearn

/*
TODO: signup: the page resolves but no account is created; add user.Service.Register once accounts are persisted
TODO: persist the catalog (storage/database/dummy only lives as long as the process)
TODO: track topic completion per user instead of the Topic.Completed flag
*/
