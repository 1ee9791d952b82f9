// Package jobs provides scheduled background tasks for the fulfillment
// system, implemented with github.com/robfig/cron/v3.
//
// Two jobs drive the assignment pool:
//
//  1. OfferDispatchJob - periodically offers paid orders to the writer pool.
//  2. OfferExpiryJob - re-enters stale offers so an unclaimed order is not
//     stuck waiting on writers who ignored it.
//
// Jobs are managed through JobManager, which starts and stops them as a
// unit. Both jobs act as the system actor; every transition they make is
// audited like any human-initiated one. Expected business outcomes (an empty
// pool, a claim racing an expiry) are not logged as errors.
package jobs
