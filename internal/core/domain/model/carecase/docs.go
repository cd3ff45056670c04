// Package carecase contains the customer-care Ticket aggregate.
//
// A ticket is bound 1:1 to an order. The first intake for an order creates
// the ticket; every later intake refiles the same ticket with the new
// request type and reason instead of creating a duplicate. Filing a ticket
// also routes the underlying order into the requested status, which is why
// the request types mirror the Pending and Baki order states.
package carecase
