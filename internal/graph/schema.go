// Package graph defines the GraphQL schema over the same services the REST
// handlers use. The schema is a thin façade: every resolver is a direct call
// into a service method, with absent lookups resolving to null and domain
// errors surfacing as GraphQL errors.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/kmalikov/social-api/internal/model"
	"github.com/kmalikov/social-api/internal/service"
)

// Services bundles everything the schema resolvers need.
type Services struct {
	Users       *service.UserService
	Profiles    *service.ProfileService
	Posts       *service.PostService
	MemberTypes *service.MemberTypeService
	Resolver    *service.Resolver
}

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":                  &graphql.Field{Type: graphql.String},
		"firstName":           &graphql.Field{Type: graphql.String},
		"lastName":            &graphql.Field{Type: graphql.String},
		"email":               &graphql.Field{Type: graphql.String},
		"subscribedToUserIds": &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

var profileType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Profile",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.String},
		"avatar":       &graphql.Field{Type: graphql.String},
		"sex":          &graphql.Field{Type: graphql.String},
		"birthday":     &graphql.Field{Type: graphql.Int},
		"country":      &graphql.Field{Type: graphql.String},
		"street":       &graphql.Field{Type: graphql.String},
		"city":         &graphql.Field{Type: graphql.String},
		"userId":       &graphql.Field{Type: graphql.String},
		"memberTypeId": &graphql.Field{Type: graphql.String},
	},
})

var memberTypeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MemberType",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.String},
		"discount":        &graphql.Field{Type: graphql.Int},
		"monthPostsLimit": &graphql.Field{Type: graphql.Int},
	},
})

var postType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Post",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.String},
		"title":   &graphql.Field{Type: graphql.String},
		"content": &graphql.Field{Type: graphql.String},
		"userId":  &graphql.Field{Type: graphql.String},
	},
})

// userFullType needs explicit resolvers because UserFull embeds User — the
// default json-tag resolution does not descend into embedded structs.
var userFullType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserFull",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type:    graphql.String,
			Resolve: fullField(func(u model.UserFull) any { return u.ID }),
		},
		"firstName": &graphql.Field{
			Type:    graphql.String,
			Resolve: fullField(func(u model.UserFull) any { return u.FirstName }),
		},
		"lastName": &graphql.Field{
			Type:    graphql.String,
			Resolve: fullField(func(u model.UserFull) any { return u.LastName }),
		},
		"email": &graphql.Field{
			Type:    graphql.String,
			Resolve: fullField(func(u model.UserFull) any { return u.Email }),
		},
		"subscribedToUserIds": &graphql.Field{
			Type:    graphql.NewList(graphql.String),
			Resolve: fullField(func(u model.UserFull) any { return u.SubscribedToUserIDs }),
		},
		"profile": &graphql.Field{
			Type:    profileType,
			Resolve: fullField(func(u model.UserFull) any { return u.Profile }),
		},
		"posts": &graphql.Field{
			Type:    graphql.NewList(postType),
			Resolve: fullField(func(u model.UserFull) any { return u.Posts }),
		},
		"memberType": &graphql.Field{
			Type:    memberTypeType,
			Resolve: fullField(func(u model.UserFull) any { return u.MemberType }),
		},
	},
})

// fullField adapts a UserFull accessor into a graphql resolver.
func fullField(get func(model.UserFull) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		if u, ok := p.Source.(model.UserFull); ok {
			return get(u), nil
		}
		return nil, nil
	}
}

// NewSchema builds the executable schema against the given services.
func NewSchema(svcs Services) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: queryFields(svcs),
	})
	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: mutationFields(svcs),
	})
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func queryFields(svcs Services) graphql.Fields {
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}

	return graphql.Fields{
		"users": &graphql.Field{
			Type: graphql.NewList(userType),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svcs.Users.List(p.Context), nil
			},
		},
		"user": &graphql.Field{
			Type: userType,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				user, ok := svcs.Users.GetByID(p.Context, p.Args["id"].(string))
				if !ok {
					return nil, nil
				}
				return user, nil
			},
		},
		"profiles": &graphql.Field{
			Type: graphql.NewList(profileType),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svcs.Profiles.List(p.Context), nil
			},
		},
		"profile": &graphql.Field{
			Type: profileType,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				profile, ok := svcs.Profiles.GetByID(p.Context, p.Args["id"].(string))
				if !ok {
					return nil, nil
				}
				return profile, nil
			},
		},
		"posts": &graphql.Field{
			Type: graphql.NewList(postType),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svcs.Posts.List(p.Context), nil
			},
		},
		"post": &graphql.Field{
			Type: postType,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				post, ok := svcs.Posts.GetByID(p.Context, p.Args["id"].(string))
				if !ok {
					return nil, nil
				}
				return post, nil
			},
		},
		"memberTypes": &graphql.Field{
			Type: graphql.NewList(memberTypeType),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svcs.MemberTypes.List(p.Context), nil
			},
		},
		"memberType": &graphql.Field{
			Type: memberTypeType,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				mt, ok := svcs.MemberTypes.GetByID(p.Context, p.Args["id"].(string))
				if !ok {
					return nil, nil
				}
				return mt, nil
			},
		},
		"usersFull": &graphql.Field{
			Type: graphql.NewList(userFullType),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svcs.Resolver.AllUsersFull(p.Context)
			},
		},
		"userFull": &graphql.Field{
			Type: userFullType,
			Args: idArg,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svcs.Resolver.UserFull(p.Context, p.Args["id"].(string)), nil
			},
		},
	}
}

func mutationFields(svcs Services) graphql.Fields {
	return graphql.Fields{
		"createUser": &graphql.Field{
			Type: userType,
			Args: graphql.FieldConfigArgument{
				"firstName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"lastName":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svcs.Users.Create(p.Context,
					p.Args["firstName"].(string),
					p.Args["lastName"].(string),
					p.Args["email"].(string),
				)
			},
		},
		"updateUser": &graphql.Field{
			Type: userType,
			Args: graphql.FieldConfigArgument{
				"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"firstName": &graphql.ArgumentConfig{Type: graphql.String},
				"lastName":  &graphql.ArgumentConfig{Type: graphql.String},
				"email":     &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var patch model.UserPatch
				if v, ok := p.Args["firstName"].(string); ok {
					patch.FirstName = &v
				}
				if v, ok := p.Args["lastName"].(string); ok {
					patch.LastName = &v
				}
				if v, ok := p.Args["email"].(string); ok {
					patch.Email = &v
				}
				return svcs.Users.Update(p.Context, p.Args["id"].(string), patch)
			},
		},
		"createProfile": &graphql.Field{
			Type: profileType,
			Args: graphql.FieldConfigArgument{
				"avatar":       &graphql.ArgumentConfig{Type: graphql.String},
				"sex":          &graphql.ArgumentConfig{Type: graphql.String},
				"birthday":     &graphql.ArgumentConfig{Type: graphql.Int},
				"country":      &graphql.ArgumentConfig{Type: graphql.String},
				"street":       &graphql.ArgumentConfig{Type: graphql.String},
				"city":         &graphql.ArgumentConfig{Type: graphql.String},
				"userId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"memberTypeId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				profile := model.Profile{
					UserID:       p.Args["userId"].(string),
					MemberTypeID: p.Args["memberTypeId"].(string),
				}
				if v, ok := p.Args["avatar"].(string); ok {
					profile.Avatar = v
				}
				if v, ok := p.Args["sex"].(string); ok {
					profile.Sex = v
				}
				if v, ok := p.Args["birthday"].(int); ok {
					profile.Birthday = v
				}
				if v, ok := p.Args["country"].(string); ok {
					profile.Country = v
				}
				if v, ok := p.Args["street"].(string); ok {
					profile.Street = v
				}
				if v, ok := p.Args["city"].(string); ok {
					profile.City = v
				}
				return svcs.Profiles.Create(p.Context, profile)
			},
		},
		"createPost": &graphql.Field{
			Type: postType,
			Args: graphql.FieldConfigArgument{
				"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"content": &graphql.ArgumentConfig{Type: graphql.String},
				"userId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				post := model.Post{
					Title:  p.Args["title"].(string),
					UserID: p.Args["userId"].(string),
				}
				if v, ok := p.Args["content"].(string); ok {
					post.Content = v
				}
				return svcs.Posts.Create(p.Context, post)
			},
		},
		"subscribeTo": &graphql.Field{
			Type: userType,
			Args: graphql.FieldConfigArgument{
				"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svcs.Users.Subscribe(p.Context,
					p.Args["id"].(string), p.Args["userId"].(string))
			},
		},
		"unsubscribeFrom": &graphql.Field{
			Type: userType,
			Args: graphql.FieldConfigArgument{
				"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return svcs.Users.Unsubscribe(p.Context,
					p.Args["id"].(string), p.Args["userId"].(string))
			},
		},
	}
}
